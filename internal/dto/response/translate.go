package response

type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}
