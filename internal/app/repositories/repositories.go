package repositories

// Repositories is the container holding every store. Constructed once at
// process start and handed to services by reference.
type Repositories struct {
	UserRepository    *UserRepository
	JobRepository     *JobRepository
	EventRepository   *EventRepository
	MessageRepository *MessageRepository
}

// NewRepositories creates the full set of empty stores
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(),
		JobRepository:     NewJobRepository(),
		EventRepository:   NewEventRepository(),
		MessageRepository: NewMessageRepository(),
	}
}
