package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Segun112/homework-tracker/core/assignment"
	"github.com/Segun112/homework-tracker/core/club"
	"github.com/Segun112/homework-tracker/core/user"
	"github.com/Segun112/homework-tracker/tests"
)

var errMissingToken = failureBody{Message: "missing or malformed jwt"}

func TestLogin(t *testing.T) {
	app, r := setup(t)
	testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)

	tests := []httpTest{
		{
			name: "valid credentials", method: http.MethodPost, path: "/login",
			body:     []byte(`{"username":"awa","password":"Gr33n-pencil"}`),
			wantCode: http.StatusOK,
		},
		{
			name: "invalid credentials", method: http.MethodPost, path: "/login",
			body:     []byte(`{"username":"awa","password":"nope"}`),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, failureBody{Message: "Invalid credentials"}),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/login",
			body:     []byte(`{"username":"awa"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: map[string]string{"password": "this field is required"}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
				return
			}

			var body struct {
				Success bool   `json:"success"`
				Role    string `json:"role"`
				ID      string `json:"id"`
				Token   string `json:"token"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			assert.True(t, body.Success)
			assert.Equal(t, user.RoleStudent, body.Role)
			assert.Equal(t, "s1", body.ID)
			assert.NotEmpty(t, body.Token)
		})
	}
}

func TestCreateAssignment(t *testing.T) {
	app, r := setup(t)
	teacher := testutil.CreateUser(t, r.usr, "t1", "mrkofi", "Ch@lk-dust1", user.RoleTeacher)
	student := testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)

	body := []byte(`{"teacher_id":"t1","name":"Essay","description":"500 words","due_date":"2024-01-10"}`)

	tests := []httpTest{
		{
			name: "no token", method: http.MethodPost, path: "/assignment",
			body: body, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "student token is rejected", method: http.MethodPost, path: "/assignment",
			body: body, token: getToken(t, student),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, failureBody{Message: "permission denied"}),
		},
		{
			name: "token subject mismatch", method: http.MethodPost, path: "/assignment",
			body:  []byte(`{"teacher_id":"t2","name":"Essay","due_date":"2024-01-10"}`),
			token: getToken(t, teacher),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, failureBody{Message: "permission denied"}),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/assignment",
			body:  []byte(`{"teacher_id":"t1","description":"500 words"}`),
			token: getToken(t, teacher),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: map[string]string{
				"name":     "this field is required",
				"due_date": "this field is required",
			}}),
		},
		{
			name: "created", method: http.MethodPost, path: "/assignment",
			body: body, token: getToken(t, teacher),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantData != nil {
				checkCodeAndData(t, tt, rec)
				return
			}

			var resp struct {
				Success    bool                  `json:"success"`
				Assignment assignment.Assignment `json:"assignment"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			assert.True(t, resp.Success)
			assert.Equal(t, 1, resp.Assignment.ID)
			assert.Equal(t, assignment.DefaultPoints, resp.Assignment.Points)
			assert.Equal(t, assignment.DefaultPenalty, resp.Assignment.Penalty)
		})
	}
}

func TestAssignClub(t *testing.T) {
	app, r := setup(t)
	teacher := testutil.CreateUser(t, r.usr, "t1", "mrkofi", "Ch@lk-dust1", user.RoleTeacher)
	press := testutil.CreateClub(t, r.club, "Press")
	jet := testutil.CreateClub(t, r.club, "Jet", "s1")

	tests := []httpTest{
		{
			name: "club not found", method: http.MethodPost, path: "/assign-club",
			body:  []byte(`{"teacher_id":"t1","student_ids":["s1"],"club_id":404}`),
			token: getToken(t, teacher),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, failureBody{Message: "Club not found"}),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/assign-club",
			body:  []byte(`{"teacher_id":"t1"}`),
			token: getToken(t, teacher),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: map[string]string{
				"student_ids": "this field is required",
				"club_id":     "this field is required",
			}}),
		},
		{
			name: "assigned from array", method: http.MethodPost, path: "/assign-club",
			body:  []byte(`{"teacher_id":"t1","student_ids":["s1","s2"],"club_id":1}`),
			token: getToken(t, teacher),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true}`),
		},
		{
			name: "assigned from comma-separated string", method: http.MethodPost, path: "/assign-club",
			body:  []byte(`{"teacher_id":"t1","student_ids":"s3, s4","club_id":1}`),
			token: getToken(t, teacher),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// s1 moved out of Jet into Press; s2..s4 joined Press
	got, err := r.club.GetClubByID(press.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, got.Members)

	got, err = r.club.GetClubByID(jet.ID)
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, got.Members)
}

func TestSubmitQuestionnaire(t *testing.T) {
	app, r := setup(t)
	student := testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)

	body := []byte(`{"student_id":"s1","answers":{"best-subject":"English","public-speaking":"No"}}`)

	tests := []httpTest{
		{
			name: "no token", method: http.MethodPost, path: "/questionnaire",
			body: body, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "submitted", method: http.MethodPost, path: "/questionnaire",
			body: body, token: getToken(t, student),
			wantCode: http.StatusOK, wantData: []byte(`{"success":true}`),
		},
		{
			name: "already submitted", method: http.MethodPost, path: "/questionnaire",
			body: body, token: getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: "Questionnaire already submitted"}),
		},
		{
			name: "missing answers", method: http.MethodPost, path: "/questionnaire",
			body:  []byte(`{"student_id":"s1"}`),
			token: getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: map[string]string{"answers": "this field is required"}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	quest, err := r.quest.GetQuestionnaireByStudentID("s1")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Press", quest.PreferredClub)
}

func TestSubmitAssignment(t *testing.T) {
	app, r := setup(t)
	student := testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)
	other := testutil.CreateUser(t, r.usr, "s2", "bilal", "Blu3-pencil", user.RoleStudent)
	a := testutil.CreateAssignment(t, r.asg, "t1", "Essay", "2024-01-10", 10, 5)

	tests := []httpTest{
		{
			name: "assignment not found", method: http.MethodPost, path: "/submit",
			body:  []byte(`{"student_id":"s1","assignment_id":404,"submission_time":"2024-01-09T10:00:00Z"}`),
			token: getToken(t, student),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, failureBody{Message: "Assignment not found"}),
		},
		{
			name: "invalid submission time", method: http.MethodPost, path: "/submit",
			body:  []byte(`{"student_id":"s1","assignment_id":1,"submission_time":"whenever"}`),
			token: getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: map[string]string{"submission_time": "must be a valid RFC 3339 timestamp"}}),
		},
		{
			name: "on time", method: http.MethodPost, path: "/submit",
			body:  []byte(`{"student_id":"s1","assignment_id":1,"submission_time":"2024-01-09T23:59:59Z"}`),
			token: getToken(t, student),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true,"score":10}`),
		},
		{
			name: "duplicate submission", method: http.MethodPost, path: "/submit",
			body:  []byte(`{"student_id":"s1","assignment_id":1,"submission_time":"2024-01-09T23:59:59Z"}`),
			token: getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, failureBody{Message: "Assignment already submitted"}),
		},
		{
			name: "late submission is penalized", method: http.MethodPost, path: "/submit",
			body:  []byte(`{"student_id":"s2","assignment_id":1,"submission_time":"2024-01-11T00:00:01Z"}`),
			token: getToken(t, other),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true,"score":5}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	subs, err := r.asg.QuerySubmissionsByStudentID("s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].AssignmentID != a.ID {
		t.Errorf("submissions = %+v", subs)
	}
}

func TestClubChat(t *testing.T) {
	app, r := setup(t)
	member := testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)
	outsider := testutil.CreateUser(t, r.usr, "s2", "bilal", "Blu3-pencil", user.RoleStudent)
	press := testutil.CreateClub(t, r.club, "Press", "s1")

	tests := []httpTest{
		{
			name: "member posts", method: http.MethodPost, path: "/club-chat",
			body:  []byte(`{"club_id":1,"student_id":"s1","message":"hello"}`),
			token: getToken(t, member),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true}`),
		},
		{
			name: "non-member is rejected", method: http.MethodPost, path: "/club-chat",
			body:  []byte(`{"club_id":1,"student_id":"s2","message":"let me in"}`),
			token: getToken(t, outsider),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, failureBody{Message: "Not a member"}),
		},
		{
			name: "club not found", method: http.MethodPost, path: "/club-chat",
			body:  []byte(`{"club_id":404,"student_id":"s1","message":"hello"}`),
			token: getToken(t, member),
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, failureBody{Message: "Club not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// the rejected message did not append
	got, err := r.club.GetClubByID(press.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Chatroom) != 1 || got.Chatroom[0].Message != "hello" {
		t.Errorf("chatroom = %+v", got.Chatroom)
	}
}

func TestDashboard(t *testing.T) {
	app, r := setup(t)
	testutil.CreateClub(t, r.club, "Press", "s1")
	a := testutil.CreateAssignment(t, r.asg, "t1", "Essay", "2024-01-10", 10, 5)
	err := r.asg.CreateSubmission(assignment.Submission{StudentID: "s1", AssignmentID: a.ID, Score: 10})
	if err != nil {
		t.Fatal(err)
	}

	req, rec := newRequest(http.MethodGet, "/dashboard/s1")
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	var dash struct {
		Submissions   []assignment.Submission `json:"submissions"`
		Club          *club.Club              `json:"club"`
		Questionnaire interface{}             `json:"questionnaire"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	assert.Len(t, dash.Submissions, 1)
	if assert.NotNil(t, dash.Club) {
		assert.Equal(t, "Press", dash.Club.Name)
	}
	assert.Nil(t, dash.Questionnaire)
}

func TestListEndpoints(t *testing.T) {
	app, r := setup(t)
	testutil.CreateUser(t, r.usr, "s1", "awa", "Gr33n-pencil", user.RoleStudent)
	testutil.CreateUser(t, r.usr, "t1", "mrkofi", "Ch@lk-dust1", user.RoleTeacher)
	testutil.CreateClub(t, r.club, "Press")
	testutil.CreateAssignment(t, r.asg, "t1", "Essay", "2024-01-10", 10, 5)

	tests := []struct {
		path    string
		wantLen int
	}{
		{path: "/users", wantLen: 1}, // students only
		{path: "/clubs", wantLen: 1},
		{path: "/assignments", wantLen: 1},
		{path: "/questionnaires", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("code = %d, want 200", rec.Code)
			}
			var list []interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			assert.Len(t, list, tt.wantLen)
		})
	}
}
