package game

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
//
// Example from resources.yaml:
//
//	session:
//	  images:
//	    - id: IMAGE_PLAYER
//	      path: images/player
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource represents a single image resource definition.
// Path is relative to base_path; ".png" is appended when it has no extension.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource represents a single sound resource definition.
// Path is relative to base_path; ".wav" is appended when it has no extension.
//
// Example:
//   - id: SOUND_BOUNCE
//     path: sounds/ball_bounce.wav
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets")
//   - relativePath: The resource's relative path (e.g., "images/player.png")
//
// Returns:
//   - The full file path (e.g., "assets/images/player.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
