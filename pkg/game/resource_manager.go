package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"

	"github.com/decker502/catchthemall/pkg/embedded"
	"github.com/decker502/catchthemall/pkg/logging"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, sounds and fonts,
// ensuring that resources are loaded only once and reused across sessions.
//
// All files are read through the embedded package, so the binary carries its
// own assets. Sounds are decoded once into PCM bytes at the audio sample rate;
// AudioManager creates a fresh player from those bytes for every play so that
// two starts of the same sound can overlap.
//
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(44100)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_PLAYER")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	soundCache    map[string][]byte           // path -> decoded PCM (16-bit stereo)
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	fontSource    *text.GoTextFaceSource
	sampleRate    int

	// YAML resource manifest
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path

	logger *log.Logger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - sampleRate: The sample rate sounds are decoded to. It must match the
//     audio.Context that will play them.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(sampleRate int) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string][]byte),
		fontFaceCache: make(map[float64]*text.GoTextFace),
		sampleRate:    sampleRate,
		resourceMap:   make(map[string]string),
		logger:        logging.For("ResourceManager"),
	}
}

// SampleRate returns the sample rate sounds are decoded to.
func (rm *ResourceManager) SampleRate() int {
	return rm.sampleRate
}

// decodeImage reads and decodes an image file without creating a GPU image.
func decodeImage(path string) (image.Image, error) {
	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG.
//
// Parameters:
//   - path: The embedded path to the image (e.g., "assets/images/player.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	rm.logger.Debug("loaded image", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSound loads and decodes a sound file, caching the PCM bytes.
// Supported formats: WAV (.wav), resampled to the manager's sample rate.
//
// Parameters:
//   - path: The embedded path to the sound (e.g., "assets/sounds/coin_picked.wav").
//
// Returns:
//   - The decoded PCM bytes, ready for audio.Context.NewPlayerFromBytes.
//   - An error if the file cannot be read, the format is unsupported, or decoding fails.
func (rm *ResourceManager) LoadSound(path string) ([]byte, error) {
	if pcm, exists := rm.soundCache[path]; exists {
		return pcm, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav)", ext)
	}

	stream, err := wav.DecodeWithSampleRate(rm.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV sound %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded sound %s: %w", path, err)
	}

	rm.soundCache[path] = pcm
	rm.logger.Debug("loaded sound", "path", path, "bytes", len(pcm))
	return pcm, nil
}

// LoadFont returns a text face of the given size backed by the Go Regular font.
// The font source is parsed once; faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// LoadResourceConfig loads and parses the YAML resource manifest.
// After loading, resources can be addressed by ID.
//
// Parameters:
//   - configPath: The embedded path to the manifest (e.g., "data/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	rm.logger.Debug("loaded resource config", "path", configPath, "groups", len(config.Groups), "resources", len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
// For example:
//
//	IMAGE_PLAYER -> assets/images/player.png
//	SOUND_BOUNCE -> assets/sounds/ball_bounce.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path mapped to a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", ErrResourceConfigNotLoaded
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}
	return filePath, nil
}

// LoadImageByID loads an image resource using its manifest ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil
	}
	return rm.GetImage(filePath)
}

// ImageSizeByID reads only the header of an image resource and returns its size.
// No GPU image is created, so it is safe to call without a running game.
func (rm *ResourceManager) ImageSizeByID(resourceID string) (width, height int, err error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return 0, 0, err
	}

	file, err := embedded.Open(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image file %s: %w", filePath, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header %s: %w", filePath, err)
	}
	return cfg.Width, cfg.Height, nil
}

// LoadSoundByID loads a sound resource using its manifest ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) ([]byte, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadSound(filePath)
}

// LoadResourceGroup loads all resources in a specified group.
// Assets are loaded once at startup so that a broken asset fails fast
// instead of surfacing mid-session.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "session")
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return ErrResourceConfigNotLoaded
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}
