package testutil

import (
	"testing"

	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
)

// TmpDB opens a jsonstore rooted in a fresh temp directory that the testing
// package cleans up.
func TmpDB(t *testing.T) *jsonstore.DB {
	t.Helper()
	db, err := jsonstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("TmpDB() failed: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, repo user.Repository, id, uname, pwd, role string) user.User {
	t.Helper()
	usr, err := repo.UpdateOrCreateUser(user.User{
		ID:       id,
		Username: uname,
		Password: pwd,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateClub(t *testing.T, repo club.Repository, name string, members ...string) club.Club {
	t.Helper()
	if members == nil {
		members = []string{}
	}
	c, err := repo.CreateClub(club.Club{
		Name:     name,
		Members:  members,
		Chatroom: []club.ChatMessage{},
	})
	if err != nil {
		t.Fatalf("CreateClub() failed: %v", err)
	}
	return c
}

func CreateAssignment(t *testing.T, repo assignment.Repository, teacherID, name, dueDate string, points, penalty int) assignment.Assignment {
	t.Helper()
	a, err := repo.CreateAssignment(assignment.Assignment{
		TeacherID: teacherID,
		Name:      name,
		DueDate:   dueDate,
		Points:    points,
		Penalty:   penalty,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return a
}
