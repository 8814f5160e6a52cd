package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// HomeResponse carries the public landing feed: a short preview of the job
// and event boards, shown without authentication
type HomeResponse struct {
	RecentJobs   []*JobResponse   `json:"recentJobs"`
	RecentEvents []*EventResponse `json:"recentEvents"`
}
