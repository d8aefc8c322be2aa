package response

type ModuleResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	Duration  string `json:"duration"`
	Thumbnail string `json:"thumbnail"`
}
