package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"etix/lib"
	"etix/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type VerifySuite struct {
	suite.Suite
	backend    *httptest.Server
	client     *lib.APIClient
	seenTokens []string
	used       map[string]bool
}

func (s *VerifySuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/organizer/events/:id/attendance/verify", func(ctx *gin.Context) {
		var body types.VerifyTokenRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		s.seenTokens = append(s.seenTokens, body.Token)
		if s.used[body.Token] {
			ctx.JSON(http.StatusConflict, gin.H{"message": "Token sudah digunakan untuk check-in"})
			return
		}
		s.used[body.Token] = true
		ctx.JSON(http.StatusOK, gin.H{"message": "Check-in berhasil dicatat"})
	})
	s.backend = httptest.NewServer(router)
	s.client = &lib.APIClient{
		BaseURL: s.backend.URL,
		Token:   func() string { return "organizer-token" },
	}
}

func (s *VerifySuite) TearDownSuite() {
	s.backend.Close()
}

func (s *VerifySuite) SetupTest() {
	s.seenTokens = nil
	s.used = map[string]bool{}
}

func (s *VerifySuite) TestRelaysDistinctBackendMessages() {
	ctx := context.Background()

	first, err := VerifyToken(ctx, s.client, 7, "AB12CD34EF")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Check-in berhasil dicatat", first)

	second, err := VerifyToken(ctx, s.client, 7, "AB12CD34EF")
	assert.Empty(s.T(), second)

	var apiErr *lib.APIError
	assert.ErrorAs(s.T(), err, &apiErr)
	assert.Equal(s.T(), "Token sudah digunakan untuk check-in", apiErr.Message)
	assert.NotEqual(s.T(), first, apiErr.Message)
}

func (s *VerifySuite) TestExtractsTokenFromScannedPayload() {
	ctx := context.Background()

	msg, err := VerifyToken(ctx, s.client, 7, `{"token":"AB12CD34EF","event_id":7}`)
	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), msg)
	assert.Equal(s.T(), []string{"AB12CD34EF"}, s.seenTokens)
}

func (s *VerifySuite) TestSendsRawTokenVerbatim() {
	ctx := context.Background()

	_, err := VerifyToken(ctx, s.client, 7, "  AB12CD34EF  ")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"AB12CD34EF"}, s.seenTokens)
}

func (s *VerifySuite) TestRejectsEmptyInput() {
	msg, err := VerifyToken(context.Background(), s.client, 7, "   ")
	assert.Empty(s.T(), msg)
	assert.Error(s.T(), err)
	assert.Empty(s.T(), s.seenTokens)
}

func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifySuite))
}
