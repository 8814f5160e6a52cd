package dto

// AdminStatsResponse carries the moderation dashboard counters
type AdminStatsResponse struct {
	TotalUsers    int `json:"totalUsers"`
	TotalJobs     int `json:"totalJobs"`
	TotalEvents   int `json:"totalEvents"`
	TotalMessages int `json:"totalMessages"`
}

// AdminDashboardResponse carries the stats plus the latest activity
type AdminDashboardResponse struct {
	Stats        *AdminStatsResponse `json:"stats"`
	RecentUsers  []*UserResponse     `json:"recentUsers"`
	RecentJobs   []*JobResponse      `json:"recentJobs"`
	RecentEvents []*EventResponse    `json:"recentEvents"`
}

// UpdateStatusRequest toggles the active flag of a user, job or event
type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// DashboardResponse carries a user's own activity overview
type DashboardResponse struct {
	User     *UserResponse      `json:"user"`
	Jobs     []*JobResponse     `json:"jobs"`
	Events   []*EventResponse   `json:"events"`
	Messages []*MessageResponse `json:"messages"`
}
