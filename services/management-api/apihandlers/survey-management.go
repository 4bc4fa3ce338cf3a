package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/repo-sumit/survey-builder-be/pkg/apihelpers"
	mw "github.com/repo-sumit/survey-builder-be/pkg/apihelpers/middlewares"
	jwthandling "github.com/repo-sumit/survey-builder-be/pkg/jwt-handling"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys"
	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddSurveyManagementAPI(rg *gin.RouterGroup) {
	surveysGroup := rg.Group("/surveys")
	surveysGroup.Use(mw.GetAndValidateManagementUserJWT(h.tokenSignKey))
	surveysGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		surveysGroup.GET("", h.getAllSurveys)
		surveysGroup.POST("", mw.RequirePayload(), h.createSurvey)
	}

	surveyGroup := surveysGroup.Group("/:surveyID")
	{
		surveyGroup.GET("", h.getSurvey)
		surveyGroup.PUT("", mw.RequirePayload(), h.updateSurvey)
		surveyGroup.DELETE("", h.deleteSurvey)
		surveyGroup.POST("/duplicate", mw.RequirePayload(), h.duplicateSurvey)

		surveyGroup.GET("/editor-state", h.getEditorState)
		surveyGroup.POST("/lock", h.acquireEditLock)
		surveyGroup.DELETE("/lock", h.releaseEditLock)

		if h.publishingEnabled {
			surveyGroup.POST("/publish", h.publishSurvey)
			surveyGroup.POST("/unpublish", h.unpublishSurvey)
		}
	}
}

func (h *HttpEndpoints) getAllSurveys(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("getAllSurveys: invalid query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	surveyList, totalCount, err := h.surveyDBConn.GetSurveys(token.InstanceID, query.Page, query.Limit, query.Filter)
	if err != nil {
		slog.Error("getAllSurveys: error retrieving surveys", slog.String("error", err.Error()), slog.String("instanceID", token.InstanceID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting surveys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"surveys": surveyList,
		"pagination": gin.H{
			"page":       query.Page,
			"limit":      query.Limit,
			"totalCount": totalCount,
		},
	})
}

func (h *HttpEndpoints) createSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)

	var req surveyTypes.Survey
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("createSurvey: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("createSurvey: creating survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", req.SurveyID))

	survey, err := surveys.CreateSurvey(token.InstanceID, req)
	if err != nil {
		switch {
		case errors.Is(err, surveys.ErrSurveyIDRequired),
			errors.Is(err, surveys.ErrSurveyNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, surveys.ErrSurveyIDTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			slog.Error("createSurvey: error creating survey", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating survey"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"survey": survey})
}

func (h *HttpEndpoints) getSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	survey, err := h.surveyDBConn.GetSurvey(token.InstanceID, surveyID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		slog.Error("getSurvey: error retrieving survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting survey"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) updateSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}

	var req surveyTypes.Survey
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("updateSurvey: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SurveyID = surveyID

	survey, err := surveys.UpdateSurvey(token.InstanceID, req)
	if err != nil {
		h.writeSurveyMutationError(c, "updateSurvey", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) deleteSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}

	slog.Info("deleteSurvey: deleting survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", surveyID))

	if err := surveys.DeleteSurvey(token.InstanceID, surveyID); err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		slog.Error("deleteSurvey: error deleting survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting survey"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "survey deleted"})
}

func (h *HttpEndpoints) duplicateSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	var req struct {
		NewSurveyID string `json:"newSurveyId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	survey, err := surveys.DuplicateSurvey(token.InstanceID, surveyID, req.NewSurveyID)
	if err != nil {
		switch {
		case errors.Is(err, surveys.ErrSurveyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
		case errors.Is(err, surveys.ErrSurveyIDRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, surveys.ErrSurveyIDTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			slog.Error("duplicateSurvey: error duplicating survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error duplicating survey"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"survey": survey})
}

func (h *HttpEndpoints) getEditorState(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	state, err := surveys.EditorStateFor(token.InstanceID, surveyID, token.ID)
	if err != nil {
		if errors.Is(err, surveys.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		slog.Error("getEditorState: error deriving editor state", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting editor state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"editorState":      state,
		"readOnly":         state.ReadOnly(),
		"canEditQuestions": state.CanEditQuestions(),
		"canPublish":       state.CanPublish(),
	})
}

func (h *HttpEndpoints) acquireEditLock(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	result, err := surveys.AcquireEditLock(token.InstanceID, surveyID, token.ID)
	if err != nil {
		slog.Error("acquireEditLock: error acquiring lock", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error acquiring edit lock"})
		return
	}

	if !result.Granted() {
		slog.Info("acquireEditLock: lock held by another editor", slog.String("surveyID", surveyID), slog.String("holderID", result.Lock.HolderID))
		c.JSON(http.StatusConflict, gin.H{
			"lockStatus": result.Status,
			"lock":       result.Lock,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lockStatus": result.Status,
		"lock":       result.Lock,
	})
}

func (h *HttpEndpoints) releaseEditLock(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	// Best effort by contract: the editor fires this on unmount and does
	// not wait for the outcome.
	surveys.ReleaseEditLock(token.InstanceID, surveyID, token.ID)
	c.JSON(http.StatusOK, gin.H{"message": "lock released"})
}

func (h *HttpEndpoints) publishSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}

	slog.Info("publishSurvey: publishing survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", surveyID))

	survey, err := surveys.PublishSurvey(token.InstanceID, surveyID, token.ID)
	if err != nil {
		h.writeSurveyMutationError(c, "publishSurvey", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) unpublishSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}

	slog.Info("unpublishSurvey: unpublishing survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", surveyID))

	survey, err := surveys.UnpublishSurvey(token.InstanceID, surveyID, token.ID)
	if err != nil {
		h.writeSurveyMutationError(c, "unpublishSurvey", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"survey": survey})
}
