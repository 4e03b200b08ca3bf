package trackermodels

type Project struct {
	Name         string       `json:"name" yaml:"name"`
	Location     string       `json:"location" yaml:"location"`
	Dependencies []Dependency `json:"dependencies" yaml:"dependencies"`
}
