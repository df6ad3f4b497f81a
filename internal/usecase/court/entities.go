package court

type CreateInput struct {
	CIF     string `json:"cif"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
