package report

type CreateInput struct {
	DetectiveID string `json:"detectiveId"`
	NumPhotos   int    `json:"num_photos"`
	Description string `json:"description"`
}
