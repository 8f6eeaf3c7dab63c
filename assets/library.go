package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/armageddon/obj"
)

var ErrUnknownVisual = errors.New("assets: unknown visual")

// Library resolves visual keys to sprites. PNG files in dir take priority;
// keys without a file fall back to generated placeholder art.
type Library struct {
	dir   string
	cache map[string]*obj.Visual
}

// NewLibrary creates a library. dir may be empty.
func NewLibrary(dir string) *Library {
	return &Library{dir: dir, cache: make(map[string]*obj.Visual)}
}

// Visual implements obj.VisualProvider. Results are cached per key.
func (l *Library) Visual(key string) (*obj.Visual, error) {
	key = cleanKey(key)
	if v, ok := l.cache[key]; ok {
		return v, nil
	}
	img, err := l.LoadImage(key)
	if err != nil {
		return nil, err
	}
	v := obj.NewVisual(key, img)
	l.cache[key] = v
	return v, nil
}

// LoadImage returns the raw image for key without building a mask.
func (l *Library) LoadImage(key string) (image.Image, error) {
	key = cleanKey(key)
	if l.dir != "" {
		img, err := decodeFile(filepath.Join(l.dir, key+".png"))
		switch {
		case err == nil:
			return img, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}
	gen, ok := placeholders[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVisual, key)
	}
	return gen(), nil
}

// Keys lists every key with placeholder art.
func Keys() []string {
	keys := make([]string, 0, len(placeholders))
	for k := range placeholders {
		keys = append(keys, k)
	}
	return keys
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func cleanKey(key string) string {
	s := filepath.ToSlash(strings.TrimSpace(key))
	s = strings.TrimPrefix(s, "assets/")
	return strings.TrimSuffix(s, ".png")
}
