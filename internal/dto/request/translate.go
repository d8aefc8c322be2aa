package request

type TranslateRequest struct {
	Text       string `json:"text" validate:"required"`
	SourceLang string `json:"sourceLang" validate:"required,min=2,max=10"`
	TargetLang string `json:"targetLang" validate:"required,min=2,max=10"`
}
