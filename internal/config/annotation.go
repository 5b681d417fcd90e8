package config

// AnnotationConfig holds settings for adding annotations to games.
type AnnotationConfig struct {
	AddFENComments bool // Comment every position with its FEN
	AddHashTag     bool // Add a HashCode tag with the final position hash
	AddPlyCount    bool // Add a PlyCount tag
}

// NewAnnotationConfig creates an AnnotationConfig with default values.
// All boolean fields default to false (Go zero value).
func NewAnnotationConfig() *AnnotationConfig {
	return &AnnotationConfig{}
}
