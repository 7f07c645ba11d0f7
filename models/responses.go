// path: models/responses.go
package models

import "time"

type ErrorResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type CreateReportResp struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// ReportItem is the listing view of an IssueReport. CreatedAt is derived
// from the id and never stored.
type ReportItem struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Mobile    string      `json:"mobile"`
	Aadhar    string      `json:"aadhar"`
	Issue     string      `json:"issue"`
	Area      string      `json:"area"`
	CreatedAt string      `json:"createdAt"`
	Images    []ImageItem `json:"images"`
}

// ImageItem is a stored image plus a data URI ready for an <img src>.
type ImageItem struct {
	Image
	DataURI string `json:"dataUri"`
}

type ReportListResp struct {
	OK    bool         `json:"ok"`
	Items []ReportItem `json:"items"`
}

// NewReportItem flattens a stored report for presentation. DataURI is left
// for the caller to fill.
func NewReportItem(r IssueReport) ReportItem {
	images := make([]ImageItem, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, ImageItem{Image: img})
	}
	return ReportItem{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Mobile:    r.Mobile,
		Aadhar:    r.Aadhar,
		Issue:     r.Issue,
		Area:      r.Area,
		CreatedAt: r.CreatedAt().UTC().Format(time.RFC3339),
		Images:    images,
	}
}

type AuthorityResp struct {
	OK        bool      `json:"ok"`
	Authority Authority `json:"authority"`
}

type AuthorityListResp struct {
	OK    bool        `json:"ok"`
	Items []Authority `json:"items"`
}

// AuthorityReq is the JSON body for the authority add and update endpoints.
// Form submissions carry the same field names. On update, Email selects the
// target unambiguously when present; otherwise Name does.
type AuthorityReq struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	HonourScore *int   `json:"honourScore"`
}

type LoginReq struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type AnalysisResp struct {
	OK      bool       `json:"ok"`
	Labels  [12]string `json:"labels"`
	Filed   [12]int    `json:"filed"`
	Solved  [12]int    `json:"solved"`
	Pending [12]int    `json:"pending"`
	Total   int        `json:"total"`
}
