package repositories

// Repositories holds all the repository instances
type Repositories struct {
	ActivityRepository     *ActivityRepository
	NotificationRepository *NotificationRepository
	FriendRepository       *FriendRepository
	UserRepository         *UserRepository
}

// NewRepositories initializes all repositories for a fresh in-memory session
func NewRepositories() *Repositories {
	return &Repositories{
		ActivityRepository:     NewActivityRepository(),
		NotificationRepository: NewNotificationRepository(),
		FriendRepository:       NewFriendRepository(),
		UserRepository:         NewUserRepository(),
	}
}
