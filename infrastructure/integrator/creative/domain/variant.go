package creativedomain

// RenderVariantsRequest é o corpo enviado ao serviço de renderização
type RenderVariantsRequest struct {
	CampaignID     string         `json:"campaign_id"`
	Kind           string         `json:"kind"`
	Count          int            `json:"count"`
	URL            string         `json:"url"`
	Form           map[string]any `json:"form,omitempty"`
	Answers        map[string]any `json:"answers,omitempty"`
	MediaSelection []string       `json:"media_selection,omitempty"`
}

type Variant struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	ImageHash    string `json:"image_hash"`
	ImageURL     string `json:"image_url"`
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	Headline     string `json:"headline"`
	PrimaryText  string `json:"primary_text"`
	CallToAction string `json:"call_to_action"`
}

type RenderVariantsResponse struct {
	Variants []Variant `json:"variants"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
