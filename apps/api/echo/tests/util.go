package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Segun112/homework-tracker/apps/api/echo"
	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/dashboard"
	"github.com/Segun112/homework-tracker/core/questionnaire"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/storage/jsonstore"
	"github.com/Segun112/homework-tracker/tests"
)

type repos struct {
	usr   user.Repository
	club  club.Repository
	asg   assignment.Repository
	quest questionnaire.Repository
}

func setup(t *testing.T) (Server, repos) {
	db := testutil.TmpDB(t)
	r := repos{
		usr:   jsonstore.NewUserRepository(db),
		club:  jsonstore.NewClubRepository(db),
		asg:   jsonstore.NewAssignmentRepository(db),
		quest: jsonstore.NewQuestionnaireRepository(db),
	}

	app := NewServer(
		&Options{
			DisableReqLogs:   true,
			UserSvc:          user.NewService(r.usr),
			ClubSvc:          club.NewService(r.club),
			AssignmentSvc:    assignment.NewService(r.asg),
			QuestionnaireSvc: questionnaire.NewService(r.quest),
			DashboardSvc:     dashboard.NewService(r.club, r.asg, r.quest),
		},
	)
	return app, r
}

type failureBody struct {
	Success bool        `json:"success"`
	Message interface{} `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, usr user.User) string {
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
