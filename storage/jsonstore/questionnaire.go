package jsonstore

import "github.com/Segun112/homework-tracker/core/questionnaire"

const questionnairesCollection = "questionnaires"

type questionnaireRepository struct {
	db *DB
}

var _ questionnaire.Repository = (*questionnaireRepository)(nil) // interface compliance check

func NewQuestionnaireRepository(db *DB) questionnaire.Repository {
	return &questionnaireRepository{db: db}
}

func (repo *questionnaireRepository) QueryAllQuestionnaires() ([]questionnaire.Questionnaire, error) {
	lock := repo.db.collLock(questionnairesCollection)
	lock.RLock()
	defer lock.RUnlock()

	quests := []questionnaire.Questionnaire{}
	err := repo.db.load(questionnairesCollection, &quests)
	return quests, err
}

func (repo *questionnaireRepository) GetQuestionnaireByStudentID(studentID string) (questionnaire.Questionnaire, error) {
	quests, err := repo.QueryAllQuestionnaires()
	if err != nil {
		return questionnaire.Questionnaire{}, err
	}
	for _, q := range quests {
		if q.StudentID == studentID {
			return q, nil
		}
	}
	return questionnaire.Questionnaire{}, questionnaire.ErrNotFound
}

func (repo *questionnaireRepository) CreateQuestionnaire(q questionnaire.Questionnaire) error {
	lock := repo.db.collLock(questionnairesCollection)
	lock.Lock()
	defer lock.Unlock()

	var quests []questionnaire.Questionnaire
	if err := repo.db.load(questionnairesCollection, &quests); err != nil {
		return err
	}
	for _, existing := range quests {
		if existing.StudentID == q.StudentID {
			return questionnaire.ErrAlreadySubmitted
		}
	}
	quests = append(quests, q)
	return repo.db.save(questionnairesCollection, quests)
}
