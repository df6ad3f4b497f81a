package vip

type CreateInput struct {
	CourtCIF     string  `json:"court_cif"`
	Description  string  `json:"description"`
	Payment      float64 `json:"payment"`
	CreationDate string  `json:"creation_date"`
}

type AssignInput struct {
	DetectiveID    string `json:"detectiveId"`
	AssignmentDate string `json:"assignment_date"`
}

type FinaliseInput struct {
	CompletionDate string `json:"completion_date"`
}

// StateAll disables the state filter in List.
const StateAll = "all"
