package metadomain

type CallToActionValue struct {
	Link string `json:"link"`
}

type CallToAction struct {
	Type  string            `json:"type"`
	Value CallToActionValue `json:"value"`
}

type LinkData struct {
	Link         string        `json:"link"`
	Message      string        `json:"message,omitempty"`
	Name         string        `json:"name,omitempty"`
	ImageHash    string        `json:"image_hash,omitempty"`
	Picture      string        `json:"picture,omitempty"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type VideoData struct {
	VideoID      string        `json:"video_id"`
	Title        string        `json:"title,omitempty"`
	Message      string        `json:"message,omitempty"`
	ImageURL     string        `json:"image_url,omitempty"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type CreateCreativeParams struct {
	AccountID       string
	Name            string
	ObjectStorySpec ObjectStorySpec
}

type CreateAdParams struct {
	AccountID  string
	AdsetID    string
	CreativeID string
	Name       string
	Status     string
}

type ResponseCreated struct {
	ID string `json:"id"`
}

type ResponseSuccess struct {
	Success bool `json:"success"`
}
