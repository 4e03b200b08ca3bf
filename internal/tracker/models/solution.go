package trackermodels

type Solution struct {
	Name     string     `json:"name" yaml:"name"`
	Location string     `json:"location" yaml:"location"`
	Projects []*Project `json:"projects" yaml:"projects"`
}
