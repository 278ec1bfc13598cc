package club

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// errors
	ErrNotFound  = errors.New("Club not found")
	ErrNotMember = errors.New("Not a member")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		QueryAllClubs() ([]Club, error)
		GetClubByID(id int) (Club, error)
		// UpdateClubs runs mutate on the whole clubs collection under its
		// exclusive lock and persists the result once, unless mutate errors.
		UpdateClubs(mutate func(clubs []Club) error) error
		// CreateClub assigns an id from the collection's sequence.
		CreateClub(c Club) (Club, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Club, error) {
	return svc.repo.QueryAllClubs()
}

func (svc *Service) GetByID(id int) (Club, error) {
	return svc.repo.GetClubByID(id)
}

func (svc *Service) Create(name string, members ...string) (Club, error) {
	if members == nil {
		members = []string{}
	}
	return svc.repo.CreateClub(Club{
		Name:     name,
		Members:  members,
		Chatroom: []ChatMessage{},
	})
}

// AssignMembers moves each student in studentIDs into the club identified by
// clubID. A student belongs to at most one club at any time: each id is first
// removed from every club's members before the (idempotent) add. Ids equal to
// teacherID are skipped. The whole batch persists as a single write.
func (svc *Service) AssignMembers(teacherID string, studentIDs []string, clubID int) error {
	return svc.repo.UpdateClubs(func(clubs []Club) error {
		target := -1
		for i := range clubs {
			if clubs[i].ID == clubID {
				target = i
				break
			}
		}
		if target < 0 {
			return ErrNotFound
		}

		for _, studentID := range studentIDs {
			if studentID == teacherID {
				continue
			}
			for i := range clubs {
				clubs[i].removeMember(studentID)
			}
			clubs[target].Members = append(clubs[target].Members, studentID)
		}
		return nil
	})
}

// PostMessage appends a message to the club's chatroom if, and only if, the
// sender is a current member.
func (svc *Service) PostMessage(clubID int, studentID, message string) (ChatMessage, error) {
	msg := ChatMessage{
		ID:        uuid.New().String(),
		StudentID: studentID,
		Message:   message,
		Timestamp: nowFunc().UTC(),
	}
	err := svc.repo.UpdateClubs(func(clubs []Club) error {
		for i := range clubs {
			if clubs[i].ID == clubID {
				if !clubs[i].HasMember(studentID) {
					return ErrNotMember
				}
				clubs[i].Chatroom = append(clubs[i].Chatroom, msg)
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

func (c *Club) removeMember(studentID string) {
	members := c.Members[:0]
	for _, m := range c.Members {
		if m != studentID {
			members = append(members, m)
		}
	}
	c.Members = members
}
