package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	mw "github.com/repo-sumit/survey-builder-be/pkg/apihelpers/middlewares"
	jwthandling "github.com/repo-sumit/survey-builder-be/pkg/jwt-handling"
	"github.com/repo-sumit/survey-builder-be/pkg/surveys"
	surveyTypes "github.com/repo-sumit/survey-builder-be/pkg/surveys/types"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddQuestionManagementAPI(rg *gin.RouterGroup) {
	questionsGroup := rg.Group("/surveys/:surveyID/questions")
	questionsGroup.Use(mw.GetAndValidateManagementUserJWT(h.tokenSignKey))
	questionsGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		questionsGroup.GET("", h.getQuestions)
		questionsGroup.POST("", mw.RequirePayload(), h.createQuestion)
		questionsGroup.GET("/:questionID", h.getQuestion)
		questionsGroup.PUT("/:questionID", mw.RequirePayload(), h.updateQuestion)
		questionsGroup.DELETE("/:questionID", h.deleteQuestion)
		questionsGroup.POST("/:questionID/duplicate", h.duplicateQuestion)
	}
}

func (h *HttpEndpoints) getQuestions(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	questions, err := h.surveyDBConn.GetQuestions(token.InstanceID, surveyID)
	if err != nil {
		slog.Error("getQuestions: error retrieving questions", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting questions"})
		return
	}

	// Hierarchical ordering, the way the question list renders them.
	surveyTypes.SortQuestionsByID(questions)

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *HttpEndpoints) createQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}

	var req surveyTypes.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("createQuestion: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slog.Info("createQuestion: creating question", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", surveyID), slog.String("questionID", req.QuestionID))

	question, err := surveys.CreateQuestion(token.InstanceID, surveyID, req)
	if err != nil {
		h.writeSurveyMutationError(c, "createQuestion", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question": question})
}

func (h *HttpEndpoints) getQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")
	questionID := c.Param("questionID")

	question, err := h.surveyDBConn.GetQuestion(token.InstanceID, surveyID, questionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		slog.Error("getQuestion: error retrieving question", slog.String("error", err.Error()), slog.String("surveyID", surveyID), slog.String("questionID", questionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting question"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (h *HttpEndpoints) updateQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}
	questionID := c.Param("questionID")

	var req surveyTypes.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("updateQuestion: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.QuestionID = questionID

	question, err := surveys.UpdateQuestion(token.InstanceID, surveyID, req)
	if err != nil {
		h.writeSurveyMutationError(c, "updateQuestion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (h *HttpEndpoints) deleteQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}
	questionID := c.Param("questionID")

	slog.Info("deleteQuestion: deleting question", slog.String("instanceID", token.InstanceID), slog.String("userID", token.ID), slog.String("surveyID", surveyID), slog.String("questionID", questionID))

	if err := surveys.DeleteQuestion(token.InstanceID, surveyID, questionID); err != nil {
		h.writeSurveyMutationError(c, "deleteQuestion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}

func (h *HttpEndpoints) duplicateQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.ManagementUserClaims)
	surveyID := c.Param("surveyID")

	if !h.requireNotLockedByOther(c, token.InstanceID, surveyID, token.ID) {
		return
	}
	questionID := c.Param("questionID")

	// The target ID is optional, the service assigns the next free root
	// level ID when it is omitted.
	var req struct {
		NewQuestionID string `json:"newQuestionId"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	question, err := surveys.DuplicateQuestion(token.InstanceID, surveyID, questionID, req.NewQuestionID)
	if err != nil {
		h.writeSurveyMutationError(c, "duplicateQuestion", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question": question})
}
