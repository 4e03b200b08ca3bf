package trackermodels

// Version is nil when the project file declares no value.
type Dependency struct {
	Name     string  `json:"name" yaml:"name"`
	Version  *string `json:"version" yaml:"version"`
	Location string  `json:"location" yaml:"location"`
}

func (d Dependency) VersionOrEmpty() string {
	if d.Version == nil {
		return ""
	}
	return *d.Version
}
