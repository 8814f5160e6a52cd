package services

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

// recentActivityLimit caps the per-entity lists on the admin dashboard
const recentActivityLimit = 5

// AdminService defines the interface for the moderation panel
type AdminService interface {
	Dashboard() *dto.AdminDashboardResponse
	ListUsers() []*dto.UserResponse
	SetUserActive(userID string, active bool) error
	ListJobs() []*dto.JobResponse
	SetJobActive(jobID string, active bool) error
	ListEvents() []*dto.EventResponse
	SetEventActive(eventID string, active bool) error
	ListMessages() []*dto.MessageResponse
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	repos    *repositories.Repositories
	sessions *auth.SessionStore
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(repos *repositories.Repositories, sessions *auth.SessionStore, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{
		repos:    repos,
		sessions: sessions,
		logger:   logger,
	}
}

// Dashboard returns the moderation counters plus the latest activity
func (s *adminServiceImpl) Dashboard() *dto.AdminDashboardResponse {
	stats := &dto.AdminStatsResponse{
		TotalUsers:    s.repos.UserRepository.Count(true),
		TotalJobs:     s.repos.JobRepository.CountActive(),
		TotalEvents:   s.repos.EventRepository.CountActive(),
		TotalMessages: s.repos.MessageRepository.Count(),
	}

	recentUsers := s.nonAdminUsersNewestFirst()
	if len(recentUsers) > recentActivityLimit {
		recentUsers = recentUsers[:recentActivityLimit]
	}

	recentJobs := s.activeJobsNewestFirst()
	if len(recentJobs) > recentActivityLimit {
		recentJobs = recentJobs[:recentActivityLimit]
	}

	recentEvents := s.activeEventsNewestFirst()
	if len(recentEvents) > recentActivityLimit {
		recentEvents = recentEvents[:recentActivityLimit]
	}

	return &dto.AdminDashboardResponse{
		Stats:        stats,
		RecentUsers:  dto.NewUserResponseList(recentUsers),
		RecentJobs:   s.jobResponses(recentJobs),
		RecentEvents: s.eventResponses(recentEvents),
	}
}

// ListUsers returns every non-admin account
func (s *adminServiceImpl) ListUsers() []*dto.UserResponse {
	users := make([]*models.User, 0)
	for _, user := range s.repos.UserRepository.GetAll() {
		if user.UserType != models.UserTypeAdmin {
			users = append(users, user)
		}
	}
	return dto.NewUserResponseList(users)
}

// SetUserActive toggles an account. Admin accounts are protected by the
// store; deactivating a user also ends their live sessions.
func (s *adminServiceImpl) SetUserActive(userID string, active bool) error {
	if err := s.repos.UserRepository.SetActive(userID, active); err != nil {
		return err
	}
	if !active {
		s.sessions.RevokeAllForUser(userID)
	}
	s.logger.Info().Str("userID", userID).Bool("active", active).Msg("Admin toggled user status")
	return nil
}

// ListJobs returns every active posting, newest first
func (s *adminServiceImpl) ListJobs() []*dto.JobResponse {
	return s.jobResponses(s.activeJobsNewestFirst())
}

// SetJobActive toggles a posting
func (s *adminServiceImpl) SetJobActive(jobID string, active bool) error {
	if err := s.repos.JobRepository.SetActive(jobID, active); err != nil {
		return err
	}
	s.logger.Info().Str("jobID", jobID).Bool("active", active).Msg("Admin toggled job status")
	return nil
}

// ListEvents returns every active event, newest first
func (s *adminServiceImpl) ListEvents() []*dto.EventResponse {
	return s.eventResponses(s.activeEventsNewestFirst())
}

// SetEventActive toggles an event
func (s *adminServiceImpl) SetEventActive(eventID string, active bool) error {
	if err := s.repos.EventRepository.SetActive(eventID, active); err != nil {
		return err
	}
	s.logger.Info().Str("eventID", eventID).Bool("active", active).Msg("Admin toggled event status")
	return nil
}

// ListMessages returns every message in the system, newest first
func (s *adminServiceImpl) ListMessages() []*dto.MessageResponse {
	messages := s.repos.MessageRepository.GetAll()
	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		sender := s.repos.UserRepository.DisplayName(message.SenderID)
		receiver := s.repos.UserRepository.DisplayName(message.ReceiverID)
		responses = append(responses, dto.NewMessageResponse(message, sender, receiver))
	}
	return responses
}

func (s *adminServiceImpl) nonAdminUsersNewestFirst() []*models.User {
	users := make([]*models.User, 0)
	for _, user := range s.repos.UserRepository.GetAll() {
		if user.UserType != models.UserTypeAdmin {
			users = append(users, user)
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users
}

func (s *adminServiceImpl) activeJobsNewestFirst() []*models.Job {
	jobs := s.repos.JobRepository.GetActive()
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs
}

func (s *adminServiceImpl) activeEventsNewestFirst() []*models.Event {
	events := s.repos.EventRepository.GetActive()
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events
}

func (s *adminServiceImpl) jobResponses(jobs []*models.Job) []*dto.JobResponse {
	responses := make([]*dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.NewJobResponse(job, s.repos.UserRepository.DisplayName(job.PostedByID)))
	}
	return responses
}

func (s *adminServiceImpl) eventResponses(events []*models.Event) []*dto.EventResponse {
	responses := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, dto.NewEventResponse(event, s.repos.UserRepository.DisplayName(event.OrganizedByID)))
	}
	return responses
}
