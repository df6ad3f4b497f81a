package detective

type PromoteInput struct {
	NewLevel int `json:"newLevel"`
}
