package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"its/config"
	httpmiddleware "its/internal/delivery/http/middleware"
	"its/internal/delivery/http/router"
	"its/internal/delivery/http/router/handler"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/mechanics"
	"its/internal/domain/service"
	mockservice "its/internal/mocks/service"
	mockusecase "its/internal/mocks/usecase"
	"its/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	e        *echo.Echo
	users    *mockusecase.MockUserUsecase
	planets  *mockusecase.MockPlanetUsecase
	ships    *mockusecase.MockSpaceShipUsecase
	missions *mockusecase.MockMissionUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("alex-token").Return(&service.Claims{
		UserID: uuid.New(), Username: "Alex", Role: "player", Type: service.TokenTypeAccess,
	}, nil).Maybe()
	tokens.EXPECT().ValidateToken("root-token").Return(&service.Claims{
		UserID: uuid.New(), Username: "root", Role: "admin", Type: service.TokenTypeAccess,
	}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("invalid")).Maybe()

	auth, err := httpmiddleware.NewAuthMiddleware(tokens)
	require.NoError(t, err)

	ts := &testServer{
		users:    mockusecase.NewMockUserUsecase(t),
		planets:  mockusecase.NewMockPlanetUsecase(t),
		ships:    mockusecase.NewMockSpaceShipUsecase(t),
		missions: mockusecase.NewMockMissionUsecase(t),
	}

	rateLimiter := httpmiddleware.NewRateLimiter(cfg, logger)
	t.Cleanup(rateLimiter.Close)

	ts.e = newEcho(cfg, logger, rateLimiter, router.RouterParams{
		UserHandler:      handler.NewUserHandler(ts.users, logger),
		PlanetHandler:    handler.NewPlanetHandler(ts.planets),
		SpaceShipHandler: handler.NewSpaceShipHandler(ts.ships),
		MissionHandler:   handler.NewMissionHandler(ts.missions),
		AuthMiddleware:   auth,
	})

	return ts
}

func (ts *testServer) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func testPlanet(name string, x, y int64) *entity.Planet {
	return &entity.Planet{ID: uuid.New(), Name: name, PositionX: x, PositionY: y, Radius: 20, Color: "#32cbd4"}
}

func testShip() *entity.SpaceShip {
	return &entity.SpaceShip{
		ID: uuid.New(), OwnerUsername: "Alex", Name: "Dragon-1",
		MaxCargoCapacity: 1, Level: 1, Speed: 15.5, Status: entity.ShipStatusFree,
	}
}

func testMission(status entity.MissionStatus) *entity.Mission {
	return &entity.Mission{
		ID:                uuid.New(),
		OwnerUsername:     "Alex",
		Ship:              testShip(),
		StartPlanet:       testPlanet("P-001", 50, 50),
		DestinationPlanet: testPlanet("P-002", 300, 300),
		Payload:           0.5,
		RegistrationTime:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:          23,
		Status:            status,
	}
}

func TestServer_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	t.Run("health", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("register", func(t *testing.T) {
		ts.users.EXPECT().
			RegisterUser(mock.Anything, &usecase.RegisterUserInput{Username: "Alex", Password: "password", Email: "alex@mail.com"}).
			Return(&entity.User{
				ID: uuid.New(), Username: "Alex", PasswordHash: "$2a$hash", Role: entity.RolePlayer,
				Extension:   &entity.UserExtension{Email: "alex@mail.com"},
				GameProfile: &entity.GameProfile{},
			}, nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/auth/register", "",
			`{"username":"Alex","password":"password","email":"alex@mail.com"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"username":"Alex"`)
		assert.Contains(t, string(env.Data), `"email":"alex@mail.com"`)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("register duplicate", func(t *testing.T) {
		ts.users.EXPECT().RegisterUser(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists.WithDetails("Alex")).Once()

		rec, env := ts.do(t, http.MethodPost, "/auth/register", "", `{"username":"Alex"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})

	t.Run("register without body", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/auth/register", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("login", func(t *testing.T) {
		ts.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "Alex", Password: "password"}).
			Return(&usecase.LoginOutput{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600}, nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/auth/login", "", `{"username":"Alex","password":"password"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"accessToken":"tok","tokenType":"Bearer","expiresIn":3600}`, string(env.Data))
	})
}

func TestServer_PrivateRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/private/whoami", "/private/ships", "/private/mission-management/missions"} {
		rec, env := ts.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code, target)

		rec, _ = ts.do(t, http.MethodGet, target, "forged", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestServer_PersonalRoom(t *testing.T) {
	ts := newTestServer(t)

	t.Run("whoami", func(t *testing.T) {
		_, env := ts.do(t, http.MethodGet, "/private/whoami", "alex-token", "")
		assert.JSONEq(t, `{"username":"Alex"}`, string(env.Data))
	})

	t.Run("user data is one directional", func(t *testing.T) {
		ts.users.EXPECT().FindUser(mock.Anything, "Alex").Return(&usecase.UserDetail{
			User: &entity.User{
				Username: "Alex", Role: entity.RolePlayer,
				Extension:   &entity.UserExtension{Email: "alex@mail.com"},
				GameProfile: &entity.GameProfile{ShipsNumber: 1, Experience: 354, CompletedMissions: 1},
			},
			Ships:    []*entity.SpaceShip{testShip()},
			Missions: []*entity.Mission{testMission(entity.MissionStatusCompleted)},
		}, nil).Once()

		rec, env := ts.do(t, http.MethodGet, "/private/personal-room/user-data", "alex-token", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var detail handler.UserDetailView
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, int64(354), detail.Profile.Experience)
		require.Len(t, detail.Ships, 1)
		assert.Equal(t, "FREE", detail.Ships[0].Status)
		require.Len(t, detail.Missions, 1)
		assert.Equal(t, "Dragon-1", detail.Missions[0].Ship.Name)
		assert.Equal(t, "P-002", detail.Missions[0].DestinationPlanet.Name)
		assert.NotContains(t, string(env.Data), "ownerUsername")
	})

	t.Run("edit extension", func(t *testing.T) {
		email := "new@mail.com"
		ts.users.EXPECT().ChangeUserExtension(mock.Anything, "Alex", entity.UserExtensionPatch{Email: &email}).
			Return(&entity.User{Username: "Alex", Extension: &entity.UserExtension{Email: email}}, nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/private/personal-room/edit", "alex-token", `{"email":"new@mail.com"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), email)
	})

	t.Run("delete account", func(t *testing.T) {
		ts.users.EXPECT().DeleteUser(mock.Anything, "Alex").Return(nil).Once()

		rec, _ := ts.do(t, http.MethodDelete, "/private/personal-room", "alex-token", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_ShipsAndPlanets(t *testing.T) {
	ts := newTestServer(t)

	t.Run("list planets on both pages", func(t *testing.T) {
		ts.planets.EXPECT().FindAllPlanets(mock.Anything).
			Return([]*entity.Planet{testPlanet("P-001", 50, 50)}, nil).Twice()

		for _, target := range []string{"/private/space-map/planets", "/private/mission-constructor/planet-list"} {
			rec, env := ts.do(t, http.MethodGet, target, "alex-token", "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`[{"name":"P-001","positionX":50,"positionY":50,"radius":20,"color":"#32cbd4","type":0}]`,
				string(env.Data))
		}
	})

	t.Run("create ship", func(t *testing.T) {
		ts.ships.EXPECT().CreateSpaceShip(mock.Anything, "Alex",
			&usecase.CreateSpaceShipInput{Name: "Dragon-1", MaxCargoCapacity: 1, Level: 1, Speed: 15.5}).
			Return(testShip(), nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/private/ships", "alex-token",
			`{"name":"Dragon-1","maxCargoCapacity":1,"level":1,"speed":15.5}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"FREE"`)
	})

	t.Run("free ships empty list", func(t *testing.T) {
		ts.ships.EXPECT().FindAllFreeShips(mock.Anything, "Alex").Return([]*entity.SpaceShip{}, nil).Once()

		_, env := ts.do(t, http.MethodGet, "/private/mission-constructor/free-ship-list", "alex-token", "")
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("all ships", func(t *testing.T) {
		ts.ships.EXPECT().FindAllShips(mock.Anything, "Alex").Return([]*entity.SpaceShip{testShip()}, nil).Once()

		_, env := ts.do(t, http.MethodGet, "/private/ships", "alex-token", "")
		assert.Contains(t, string(env.Data), "Dragon-1")
	})
}

func TestServer_AdminRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec, env := ts.do(t, http.MethodDelete, "/admin/planets", "alex-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)

	ts.planets.EXPECT().DeleteAllPlanets(mock.Anything).Return(int64(3), nil).Once()
	rec, env = ts.do(t, http.MethodDelete, "/admin/planets", "root-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":3}`, string(env.Data))

	ts.planets.EXPECT().DeleteAllPlanets(mock.Anything).Return(int64(0), domainerrors.ErrPlanetInUse).Once()
	rec, env = ts.do(t, http.MethodDelete, "/admin/planets", "root-token", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PLANET_IN_USE", env.Error.Code)

	ts.planets.EXPECT().CreatePlanet(mock.Anything, &usecase.CreatePlanetInput{
		Name: "P-003", PositionX: 10, PositionY: 20, Radius: 15, Color: "#fff", Type: 1,
	}).Return(testPlanet("P-003", 10, 20), nil).Once()
	rec, _ = ts.do(t, http.MethodPost, "/admin/planets", "root-token",
		`{"name":"P-003","positionX":10,"positionY":20,"radius":15,"color":"#fff","type":1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_MissionRoutes(t *testing.T) {
	ts := newTestServer(t)

	t.Run("analyze binds query", func(t *testing.T) {
		ts.missions.EXPECT().GenerateMissionMetrics(mock.Anything, "Alex",
			&usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}).
			Return(&mechanics.MissionMetrics{ShipName: "Dragon-1", Distance: 353.553, Duration: 23}, nil).Once()

		rec, env := ts.do(t, http.MethodGet,
			"/private/mission-constructor/analyze?start=P-001&destination=P-002&ship=Dragon-1&payload=0.5",
			"alex-token", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"duration":23`)
	})

	t.Run("construct", func(t *testing.T) {
		ts.missions.EXPECT().ConstructNewMission(mock.Anything, "Alex",
			&usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}).
			Return(testMission(entity.MissionStatusCreated), nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/private/mission-constructor/construct", "alex-token",
			`{"start":"P-001","destination":"P-002","ship":"Dragon-1","payload":0.5}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"CREATED"`)
	})

	t.Run("construct with busy ship", func(t *testing.T) {
		ts.missions.EXPECT().ConstructNewMission(mock.Anything, "Alex", mock.Anything).
			Return(nil, domainerrors.ErrShipNotAvailable).Once()

		rec, env := ts.do(t, http.MethodPost, "/private/mission-constructor/construct", "alex-token",
			`{"start":"P-001","destination":"P-002","ship":"Dragon-1","payload":0.5}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SHIP_NOT_AVAILABLE", env.Error.Code)
	})

	t.Run("list", func(t *testing.T) {
		ts.missions.EXPECT().FindAllMissions(mock.Anything, "Alex").Return([]*entity.Mission{}, nil).Once()

		_, env := ts.do(t, http.MethodGet, "/private/mission-management/missions", "alex-token", "")
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("missing id", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodPost, "/private/mission/start", "alex-token", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec, env := ts.do(t, http.MethodGet, "/private/mission/details?id=abc", "alex-token", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	transitions := []struct {
		path   string
		expect func(id uuid.UUID) *mock.Call
		status entity.MissionStatus
	}{
		{"/private/mission/details", func(id uuid.UUID) *mock.Call {
			return ts.missions.EXPECT().FindMission(mock.Anything, "Alex", id).Call
		}, entity.MissionStatusCreated},
		{"/private/mission/start", func(id uuid.UUID) *mock.Call {
			return ts.missions.EXPECT().StartMission(mock.Anything, "Alex", id).Call
		}, entity.MissionStatusStarted},
		{"/private/mission/cancel", func(id uuid.UUID) *mock.Call {
			return ts.missions.EXPECT().CancelMission(mock.Anything, "Alex", id).Call
		}, entity.MissionStatusCanceled},
		{"/private/mission/complete", func(id uuid.UUID) *mock.Call {
			return ts.missions.EXPECT().CompleteMission(mock.Anything, "Alex", id).Call
		}, entity.MissionStatusCompleted},
	}

	for _, tt := range transitions {
		t.Run(tt.path, func(t *testing.T) {
			mission := testMission(tt.status)
			tt.expect(mission.ID).Return(mission, nil).Once()

			method := http.MethodPost
			if strings.HasSuffix(tt.path, "details") {
				method = http.MethodGet
			}

			rec, env := ts.do(t, method, tt.path+"?id="+mission.ID.String(), "alex-token", "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, string(env.Data), `"status":"`+tt.status.String()+`"`)
		})
	}

	t.Run("state conflict", func(t *testing.T) {
		id := uuid.New()
		ts.missions.EXPECT().CompleteMission(mock.Anything, "Alex", id).
			Return(nil, domainerrors.ErrMissionStateConflict).Once()

		rec, env := ts.do(t, http.MethodPost, "/private/mission/complete?id="+id.String(), "alex-token", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "MISSION_STATE_CONFLICT", env.Error.Code)
	})

	t.Run("foreign mission", func(t *testing.T) {
		id := uuid.New()
		ts.missions.EXPECT().FindMission(mock.Anything, "Alex", id).
			Return(nil, domainerrors.ErrOwnershipViolation).Once()

		rec, env := ts.do(t, http.MethodGet, "/private/mission/details?id="+id.String(), "alex-token", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "OWNERSHIP_VIOLATION", env.Error.Code)
	})
}
