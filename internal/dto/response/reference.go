package response

type ReferenceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
