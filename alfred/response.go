package alfred

import (
	"encoding/json"
	"io"

	"github.com/poiesic/itemsearch/core"
)

const (
	// DefaultIconDir is the directory record icons are resolved against.
	DefaultIconDir = "icons"
	// DefaultErrorIcon is the icon shown on the error item.
	DefaultErrorIcon = "icon.png"

	errorUID = "error"
)

// Response is the top-level object written to the launcher.
type Response struct {
	Items []Item `json:"items"`
}

// Icon points at an image file relative to the workflow directory.
type Icon struct {
	Path string `json:"path"`
}

// Completion holds the fields the launcher uses for its own filtering and tab
// completion. Error items carry none.
type Completion struct {
	Match        string `json:"match"`
	Autocomplete string `json:"autocomplete"`
}

// Item is one row in the launcher's result list.
type Item struct {
	UID      string `json:"uid"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
	Icon     Icon   `json:"icon"`
	*Completion
}

// NewItem formats a search result. Icons are looked up as iconDir + "/" + imagefile.
func NewItem(result *core.Result, iconDir string) Item {
	record := result.Record
	return Item{
		UID:      record.Arg,
		Title:    record.Title,
		Subtitle: record.Subtitle,
		Arg:      record.Arg,
		Icon:     Icon{Path: iconDir + "/" + record.ImageFile},
		Completion: &Completion{
			Match:        result.ProductName + " " + record.Title,
			Autocomplete: result.ProductName,
		},
	}
}

// NewResponse formats results in order.
func NewResponse(results []*core.Result, iconDir string) *Response {
	items := make([]Item, len(results))
	for i, result := range results {
		items[i] = NewItem(result, iconDir)
	}
	return &Response{Items: items}
}

// NewErrorResponse builds the single-item response used for failures.
func NewErrorResponse(title, subtitle, icon string) *Response {
	return &Response{Items: []Item{{
		UID:      errorUID,
		Title:    title,
		Subtitle: subtitle,
		Arg:      "",
		Icon:     Icon{Path: icon},
	}}}
}

// IsError reports whether r is an error response.
func (r *Response) IsError() bool {
	return len(r.Items) == 1 && r.Items[0].UID == errorUID && r.Items[0].Completion == nil
}

// Write encodes r to w as a single newline-terminated JSON line.
func (r *Response) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(r.normalized())
}

// normalized guarantees an empty result list encodes as [] rather than null.
func (r *Response) normalized() *Response {
	if r.Items != nil {
		return r
	}
	return &Response{Items: []Item{}}
}
