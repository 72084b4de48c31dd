package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moodlight_backend/internals/configs"
	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/databases/dbtest"
	questionScheduler "moodlight_backend/internals/features/journal/questions/scheduler"
	questionService "moodlight_backend/internals/features/journal/questions/service"
	authHelper "moodlight_backend/internals/features/users/auth/helper"
	authService "moodlight_backend/internals/features/users/auth/service"
	userModel "moodlight_backend/internals/features/users/user/model"
	helper "moodlight_backend/internals/helpers"
	"moodlight_backend/internals/helpers/dbtime"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app   *fiber.App
	db    *gorm.DB
	today string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.AdminKey = "let-me-in"
	authHelper.BcryptCost = bcrypt.MinCost

	db := dbtest.Open(t)
	loc := dbtime.LoadLocation("Asia/Seoul")
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	clock := dbtime.ClockFunc(func() time.Time { return now })

	qs := questionService.NewQuestionService(db, nil, clock, loc)
	rotator := questionScheduler.NewRotator(db, questionScheduler.Options{
		Clock:       clock,
		Location:    loc,
		Invalidator: qs,
	})

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	SetupRoutes(app, Deps{
		DB:        db,
		Clock:     clock,
		Location:  loc,
		Questions: qs,
		Rotator:   rotator,
	})
	return &testServer{app: app, db: db, today: dbtime.Today(clock, loc)}
}

func (s *testServer) token(t *testing.T, u userModel.UserModel) string {
	t.Helper()
	tok, err := authService.IssueAccessToken(u)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/question", "/answer/my", "/comment/1", "/notification", "/api/auth/", "/api/user/" + "00000000-0000-0000-0000-000000000000"} {
		code, env := s.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, code, path)
		assert.False(t, env.Success, path)
	}

	code, _ := s.do(t, http.MethodGet, "/question", "not-a-jwt", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, code)

	dbtest.SeedUser(t, s.db, "taken")
	code, env := s.do(t, http.MethodGet, "/api/user/exist?nickname=taken", "", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	s := newTestServer(t)
	u := dbtest.SeedUser(t, s.db, "regular")
	tok := s.token(t, u)

	code, env := s.do(t, http.MethodPost, "/question", tok, `{"contents":"x","mood":"sad"}`)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, constants.MsgUserNotAdmin, env.Message)

	code, _ = s.do(t, http.MethodPost, "/api/a/questions/rotate", tok, "")
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestAdminCreatesAndRotatesQuestions(t *testing.T) {
	s := newTestServer(t)
	admin := dbtest.SeedUser(t, s.db, "admin")
	require.NoError(t, s.db.Model(&userModel.UserModel{}).Where("id = ?", admin.ID).Update("is_admin", true).Error)
	tok := s.token(t, admin)

	code, env := s.do(t, http.MethodPost, "/question", tok,
		`[{"contents":"what made you cry?","mood":"sad"},{"contents":"what made you laugh?","mood":"happy"}]`)
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	code, env = s.do(t, http.MethodPost, "/question", tok, `{"contents":"bad","mood":"bored"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code, env.Message)

	code, _ = s.do(t, http.MethodPost, "/api/a/questions/rotate", tok, "")
	require.Equal(t, fiber.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/question?date=today", tok, "")
	require.Equal(t, fiber.StatusOK, code)
	var questions []struct {
		ID            uint   `json:"id"`
		Mood          string `json:"mood"`
		Activated     bool   `json:"activated"`
		ActivatedDate string `json:"activatedDate"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &questions))
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.True(t, q.Activated)
		assert.Equal(t, s.today, q.ActivatedDate)
	}

	code, env = s.do(t, http.MethodGet, "/api/a/questions/rotations", tok, "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)

	code, _ = s.do(t, http.MethodGet, "/question?date=yesterday", tok, "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestAnswerAndLikeFlow(t *testing.T) {
	s := newTestServer(t)
	author := dbtest.SeedUser(t, s.db, "author")
	fan := dbtest.SeedUser(t, s.db, "fan")
	q := dbtest.SeedQuestion(t, s.db, constants.MoodHappy, true, s.today)
	a := dbtest.SeedAnswer(t, s.db, author.ID, q.ID, false)
	fanTok := s.token(t, fan)

	body := `{"answerId":` + uintString(a.ID) + `}`

	code, env := s.do(t, http.MethodPut, "/answer/like/true", fanTok, body)
	require.Equal(t, fiber.StatusOK, code, env.Message)
	var res struct {
		AnswerID uint   `json:"answerId"`
		Result   string `json:"result"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &res))
	assert.Equal(t, a.ID, res.AnswerID)
	assert.Equal(t, "added", res.Result)

	code, env = s.do(t, http.MethodPut, "/answer/like/true", fanTok, body)
	require.Equal(t, fiber.StatusOK, code)
	require.NoError(t, sonic.Unmarshal(env.Data, &res))
	assert.Equal(t, "already_liked", res.Result)
	assert.Equal(t, 1, dbtest.Reload(t, s.db, a.ID).Likes)

	code, env = s.do(t, http.MethodGet, "/answer/"+uintString(q.ID)+"?start=0&take=10", fanTok, "")
	require.Equal(t, fiber.StatusOK, code)
	var rows []struct {
		ID     uint `json:"id"`
		IsLike bool `json:"isLike"`
		Likes  int  `json:"likes"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsLike)
	assert.Equal(t, 1, rows[0].Likes)

	code, _ = s.do(t, http.MethodPut, "/answer/like/maybe", fanTok, body)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodPut, "/answer/like/true", fanTok, `{"answerId":9999}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAnswerOnInactiveQuestionIsRejected(t *testing.T) {
	s := newTestServer(t)
	u := dbtest.SeedUser(t, s.db, "late")
	q := dbtest.SeedQuestion(t, s.db, constants.MoodSad, false, "")

	code, env := s.do(t, http.MethodPost, "/answer", s.token(t, u),
		`{"questionId":`+uintString(q.ID)+`,"contents":"hello","moodLevel":3}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, constants.MsgQuestionNotActivated, env.Message)
}

func TestJoinLoginMeLogout(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/auth/join", "",
		`{"email":"Mood@Example.com","password":"secret1","nickname":"mooder"}`)
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	code, env = s.do(t, http.MethodPost, "/api/auth/join", "",
		`{"email":"mood@example.com","password":"secret1","nickname":"other"}`)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, constants.MsgEmailAlreadyExists, env.Message)

	code, _ = s.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"mood@example.com","password":"wrong"}`)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, env = s.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"mood@example.com","password":"secret1"}`)
	require.Equal(t, fiber.StatusOK, code, env.Message)
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)

	code, env = s.do(t, http.MethodGet, "/api/auth/", login.AccessToken, "")
	require.Equal(t, fiber.StatusOK, code)
	var me struct {
		Nickname string `json:"nickname"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	require.NoError(t, sonic.Unmarshal(env.Data, &me))
	assert.Equal(t, "mooder", me.Nickname)
	assert.False(t, me.IsAdmin)

	code, _ = s.do(t, http.MethodPost, "/api/auth/logout", login.AccessToken, "")
	require.Equal(t, fiber.StatusOK, code)

	code, _ = s.do(t, http.MethodGet, "/api/auth/", login.AccessToken, "")
	assert.Equal(t, fiber.StatusUnauthorized, code, "a logged out token is blacklisted")
}

func TestJoinWithAdminKey(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodPost, "/api/auth/join", "",
		`{"email":"boss@example.com","password":"secret1","nickname":"boss","adminKey":"let-me-in"}`)
	require.Equal(t, fiber.StatusCreated, code, env.Message)

	var u userModel.UserModel
	require.NoError(t, s.db.Where("email = ?", "boss@example.com").Take(&u).Error)
	assert.True(t, u.IsAdmin)

	code, _ = s.do(t, http.MethodPost, "/api/a/questions/rotate", s.token(t, u), "")
	assert.Equal(t, fiber.StatusOK, code)
}

func TestDeactivatedUserIsForbidden(t *testing.T) {
	s := newTestServer(t)
	u := dbtest.SeedUser(t, s.db, "gone")
	tok := s.token(t, u)
	require.NoError(t, s.db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Update("is_active", false).Error)

	code, _ := s.do(t, http.MethodGet, "/question", tok, "")
	assert.Equal(t, fiber.StatusForbidden, code)
}

func uintString(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
