package model // import "github.com/Xunop/e-verse/internal/model"

// Book is one entry of the 66 book canon.
type Book struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	TotalChapters int    `json:"total_chapters"`
	// ProviderID is the 1-based book number the remote text provider uses.
	ProviderID int `json:"provider_id"`
}
