package models

// Asset is a file held by the media gateway.
type Asset struct {
	URL      string `json:"url"      bson:"url"`
	PublicID string `json:"publicId" bson:"public_id"`
}

func (a *Asset) IsZero() bool {
	return a == nil || a.PublicID == ""
}
