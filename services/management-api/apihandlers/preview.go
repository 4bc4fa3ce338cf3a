package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	mw "github.com/repo-sumit/survey-builder-be/pkg/apihelpers/middlewares"
	jwthandling "github.com/repo-sumit/survey-builder-be/pkg/jwt-handling"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys/previewengine"
	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Preview sessions live in memory only. A session walks a snapshot of the
// survey taken at creation time; editing the survey does not affect an
// open preview.
const previewSessionMaxAge = 2 * time.Hour

type previewSession struct {
	instanceID string
	surveyID   string
	ownerID    string
	createdAt  time.Time
	session    *previewengine.Session
}

type previewSessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*previewSession
}

func newPreviewSessionRegistry() *previewSessionRegistry {
	return &previewSessionRegistry{
		sessions: map[string]*previewSession{},
	}
}

func (r *previewSessionRegistry) add(entry *previewSession) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneExpired()

	sessionID := primitive.NewObjectID().Hex()
	r.sessions[sessionID] = entry
	return sessionID
}

func (r *previewSessionRegistry) get(sessionID string, instanceID string, ownerID string) (*previewSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok || entry.instanceID != instanceID || entry.ownerID != ownerID {
		return nil, false
	}
	if time.Since(entry.createdAt) > previewSessionMaxAge {
		delete(r.sessions, sessionID)
		return nil, false
	}
	return entry, true
}

func (r *previewSessionRegistry) remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// pruneExpired must be called with the mutex held.
func (r *previewSessionRegistry) pruneExpired() {
	for id, entry := range r.sessions {
		if time.Since(entry.createdAt) > previewSessionMaxAge {
			delete(r.sessions, id)
		}
	}
}

func (h *HttpEndpoints) AddPreviewAPI(rg *gin.RouterGroup) {
	createGroup := rg.Group("/surveys/:surveyID/preview")
	createGroup.Use(mw.GetAndValidateManagementUserJWT(h.tokenSignKey))
	createGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		createGroup.POST("", h.startPreviewSession)
	}

	sessionGroup := rg.Group("/preview/:sessionID")
	sessionGroup.Use(mw.GetAndValidateManagementUserJWT(h.tokenSignKey))
	sessionGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		sessionGroup.GET("", h.getPreviewState)
		sessionGroup.POST("/answer", mw.RequirePayload(), h.setPreviewAnswer)
		sessionGroup.POST("/advance", h.advancePreview)
		sessionGroup.POST("/goto", mw.RequirePayload(), h.jumpPreview)
		sessionGroup.POST("/language", mw.RequirePayload(), h.selectPreviewLanguage)
		sessionGroup.POST("/restart", h.restartPreview)
		sessionGroup.DELETE("", h.endPreviewSession)
	}
}

func (h *HttpEndpoints) startPreviewSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	survey, err := h.surveyDBConn.GetSurvey(token.InstanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		slog.Error("startPreviewSession: error retrieving survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting survey"})
		return
	}

	questions, err := h.surveyDBConn.GetQuestions(token.InstanceID, surveyID)
	if err != nil {
		slog.Error("startPreviewSession: error retrieving questions", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting questions"})
		return
	}

	entry := &previewSession{
		instanceID: token.InstanceID,
		surveyID:   surveyID,
		ownerID:    token.ID,
		createdAt:  time.Now(),
		session:    previewengine.NewSession(*survey, questions),
	}
	sessionID := h.previewSessions.add(entry)

	slog.Info("startPreviewSession: preview session started", slog.String("instanceID", token.InstanceID), slog.String("surveyID", surveyID), slog.String("sessionID", sessionID))

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sessionID,
		"state":     previewStateResponse(entry.session),
	})
}

func (h *HttpEndpoints) lookupPreviewSession(c *gin.Context) (*previewSession, bool) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	sessionID := c.Param("sessionID")

	entry, ok := h.previewSessions.get(sessionID, token.InstanceID, token.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "preview session not found"})
		return nil, false
	}
	return entry, true
}

func (h *HttpEndpoints) getPreviewState(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) setPreviewAnswer(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}

	var req struct {
		QuestionID string      `json:"questionId"`
		Value      interface{} `json:"value"`
		Answered   *bool       `json:"answered,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.QuestionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId is required"})
		return
	}

	entry.session.SetAnswer(req.QuestionID, req.Value, req.Answered)
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) advancePreview(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}

	entry.session.Advance()
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) jumpPreview(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := entry.session.JumpTo(req.Index); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) selectPreviewLanguage(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}

	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry.session.SelectLanguage(req.Language)
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) restartPreview(c *gin.Context) {
	entry, ok := h.lookupPreviewSession(c)
	if !ok {
		return
	}

	entry.session.Restart()
	c.JSON(http.StatusOK, gin.H{"state": previewStateResponse(entry.session)})
}

func (h *HttpEndpoints) endPreviewSession(c *gin.Context) {
	if _, ok := h.lookupPreviewSession(c); !ok {
		return
	}

	h.previewSessions.remove(c.Param("sessionID"))
	c.JSON(http.StatusOK, gin.H{"message": "preview session ended"})
}

// previewStateResponse renders the session the way the preview UI consumes
// it: visible questions with their content already resolved into the
// selected language.
func previewStateResponse(session *previewengine.Session) gin.H {
	language := session.EffectiveLanguage()
	visible := session.VisibleQuestions()

	questions := make([]gin.H, 0, len(visible))
	for _, question := range visible {
		content := previewengine.ResolveQuestionContent(question, language)

		entry := gin.H{
			"questionId":          question.QuestionID,
			"questionType":        question.QuestionType,
			"isMandatory":         question.IsMandatory,
			"description":         content.Description,
			"optionalDescription": content.OptionalDescription,
			"options":             content.Options,
			"tableHeaders":        content.TableHeaders,
			"tableRows":           content.TableRows,
			"answered":            session.IsAnswered(question.QuestionID),
		}
		if answer, ok := session.Answer(question.QuestionID); ok {
			entry["answer"] = answer.Value
		}
		questions = append(questions, entry)
	}

	var currentQuestionID string
	if current, ok := session.CurrentQuestion(); ok {
		currentQuestionID = current.QuestionID
	}

	return gin.H{
		"survey":             previewSurveyInfo(session.Survey()),
		"availableLanguages": session.AvailableLanguages(),
		"language":           language,
		"questions":          questions,
		"currentIndex":       session.CurrentIndex(),
		"currentQuestionId":  currentQuestionID,
		"validationMessage":  session.ValidationMessage(),
		"completed":          session.Completed(),
	}
}

func previewSurveyInfo(survey surveyTypes.Survey) gin.H {
	return gin.H{
		"surveyId":          survey.SurveyID,
		"surveyName":        survey.SurveyName,
		"surveyDescription": survey.SurveyDescription,
		"publishStatus":     survey.PublishStatus(),
	}
}
