package jsonstore

import "github.com/Segun112/homework-tracker/core/club"

const clubsCollection = "clubs"

type clubRepository struct {
	db *DB
}

var _ club.Repository = (*clubRepository)(nil) // interface compliance check

func NewClubRepository(db *DB) club.Repository {
	return &clubRepository{db: db}
}

func (repo *clubRepository) QueryAllClubs() ([]club.Club, error) {
	lock := repo.db.collLock(clubsCollection)
	lock.RLock()
	defer lock.RUnlock()

	clubs := []club.Club{}
	err := repo.db.load(clubsCollection, &clubs)
	return clubs, err
}

func (repo *clubRepository) GetClubByID(id int) (club.Club, error) {
	clubs, err := repo.QueryAllClubs()
	if err != nil {
		return club.Club{}, err
	}
	for _, c := range clubs {
		if c.ID == id {
			return c, nil
		}
	}
	return club.Club{}, club.ErrNotFound
}

func (repo *clubRepository) UpdateClubs(mutate func(clubs []club.Club) error) error {
	lock := repo.db.collLock(clubsCollection)
	lock.Lock()
	defer lock.Unlock()

	var clubs []club.Club
	if err := repo.db.load(clubsCollection, &clubs); err != nil {
		return err
	}
	if err := mutate(clubs); err != nil {
		return err
	}
	return repo.db.save(clubsCollection, clubs)
}

func (repo *clubRepository) CreateClub(c club.Club) (club.Club, error) {
	lock := repo.db.collLock(clubsCollection)
	lock.Lock()
	defer lock.Unlock()

	var clubs []club.Club
	if err := repo.db.load(clubsCollection, &clubs); err != nil {
		return club.Club{}, err
	}
	seq, err := repo.db.nextSeq(clubsCollection)
	if err != nil {
		return club.Club{}, err
	}
	c.ID = seq
	clubs = append(clubs, c)
	return c, repo.db.save(clubsCollection, clubs)
}
