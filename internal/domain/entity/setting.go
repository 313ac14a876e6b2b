package entity

// Setting rows are persisted individually but always presented to callers as
// a flat key -> value map. Values are text regardless of what they encode;
// Type is a display hint (currently always "text").
type Setting struct {
	Key   string `json:"key" firestore:"key"`
	Value string `json:"value" firestore:"value"`
	Type  string `json:"type" firestore:"type"`
}
