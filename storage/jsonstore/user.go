package jsonstore

import (
	"strconv"

	"github.com/Segun112/homework-tracker/core/user"
)

const usersCollection = "users"

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	lock := repo.db.collLock(usersCollection)
	lock.RLock()
	defer lock.RUnlock()

	users := []user.User{}
	err := repo.db.load(usersCollection, &users)
	return users, err
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	users, err := repo.QueryAllUsers()
	if err != nil {
		return user.User{}, err
	}
	for _, usr := range users {
		if usr.ID == id {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	users, err := repo.QueryAllUsers()
	if err != nil {
		return user.User{}, err
	}
	for _, usr := range users {
		if usr.Username == username {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateOrCreateUser(usr user.User) (user.User, error) {
	lock := repo.db.collLock(usersCollection)
	lock.Lock()
	defer lock.Unlock()

	var users []user.User
	if err := repo.db.load(usersCollection, &users); err != nil {
		return user.User{}, err
	}

	for i := range users {
		if users[i].Username == usr.Username {
			usr.ID = users[i].ID
			users[i] = usr
			return usr, repo.db.save(usersCollection, users)
		}
	}

	if usr.ID == "" {
		seq, err := repo.db.nextSeq(usersCollection)
		if err != nil {
			return user.User{}, err
		}
		usr.ID = "u" + strconv.Itoa(seq)
	}
	users = append(users, usr)
	return usr, repo.db.save(usersCollection, users)
}
