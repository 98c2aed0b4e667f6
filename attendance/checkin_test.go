package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"etix/lib"
	"etix/models"
	"etix/types"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CheckinSuite struct {
	suite.Suite
	backend    *httptest.Server
	client     *lib.APIClient
	seenTokens []string
}

func (s *CheckinSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/events/:id/checkin", func(ctx *gin.Context) {
		var body types.CheckinRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		s.seenTokens = append(s.seenTokens, body.Token)
		if body.Token == "UNKNOWN000" {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Token tidak ditemukan"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"message":           "Check-in berhasil",
			"attendance_number": 17,
		})
	})
	s.backend = httptest.NewServer(router)
	s.client = &lib.APIClient{
		BaseURL: s.backend.URL,
		Token:   func() string { return "session-token" },
	}
}

func (s *CheckinSuite) TearDownSuite() {
	s.backend.Close()
}

func (s *CheckinSuite) SetupTest() {
	s.seenTokens = nil
}

func checkinEvent() *models.Event {
	return &models.Event{
		ID:           7,
		NamaEvent:    "Tech Conference",
		TanggalMulai: "2026-05-20",
		WaktuMulai:   "08:00",
		WaktuSelesai: "17:00",
	}
}

func clockAt(clock string) clockwork.Clock {
	t, _ := time.ParseInLocation("2006-01-02 15:04:05", "2026-05-20 "+clock, time.Local)
	return clockwork.NewFakeClockAt(t)
}

func (s *CheckinSuite) TestEventWindowBoundsAreInclusive() {
	event := checkinEvent()

	assert.True(s.T(), IsEventTime(event, clockAt("08:00:00")))
	assert.True(s.T(), IsEventTime(event, clockAt("12:30:00")))
	assert.True(s.T(), IsEventTime(event, clockAt("17:00:00")))
	assert.False(s.T(), IsEventTime(event, clockAt("07:59:59")))
	assert.False(s.T(), IsEventTime(event, clockAt("17:00:01")))
}

func (s *CheckinSuite) TestEventDayGating() {
	event := checkinEvent()

	assert.True(s.T(), IsEventToday(event, clockAt("12:00:00")))

	dayBefore := clockwork.NewFakeClockAt(time.Date(2026, 5, 19, 12, 0, 0, 0, time.Local))
	assert.False(s.T(), IsEventToday(event, dayBefore))

	event.TanggalMulai = "not-a-date"
	assert.False(s.T(), IsEventToday(event, clockAt("12:00:00")))
}

func (s *CheckinSuite) TestSelfCheckinGate() {
	event := checkinEvent()
	inWindow := clockAt("09:00:00")

	assert.True(s.T(), SelfCheckinAllowed(event, types.ATTENDANCE_PENDING, inWindow))
	assert.False(s.T(), SelfCheckinAllowed(event, types.ATTENDANCE_CHECKED_IN, inWindow))
	assert.False(s.T(), SelfCheckinAllowed(event, types.ATTENDANCE_CHECKED_OUT, inWindow))
	assert.False(s.T(), SelfCheckinAllowed(event, types.ATTENDANCE_PENDING, clockAt("18:00:00")))
}

func (s *CheckinSuite) TestSelfCheckinNormalizesToken() {
	result, err := SelfCheckin(context.Background(), s.client, 7, "  ab12cd34ef ")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 17, result.AttendanceNumber)
	assert.Equal(s.T(), []string{"AB12CD34EF"}, s.seenTokens)
}

func (s *CheckinSuite) TestSelfCheckinRequiresToken() {
	result, err := SelfCheckin(context.Background(), s.client, 7, "   ")
	assert.Nil(s.T(), result)
	assert.Error(s.T(), err)
	assert.Empty(s.T(), s.seenTokens)
}

func (s *CheckinSuite) TestSelfCheckinRelaysBackendRejection() {
	result, err := SelfCheckin(context.Background(), s.client, 7, "unknown000")
	assert.Nil(s.T(), result)

	var apiErr *lib.APIError
	assert.ErrorAs(s.T(), err, &apiErr)
	assert.Equal(s.T(), http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(s.T(), "Token tidak ditemukan", apiErr.Message)
}

func TestCheckinSuite(t *testing.T) {
	suite.Run(t, new(CheckinSuite))
}
