package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	interviewhandler "recruitment-backend/lib/interview"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	interviewapimodels "recruitment-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interview", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get("round/list", controller.listRounds)
		router.Post("round", controller.createRound)
		router.Put("round/:id", controller.updateRound)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("update_status", controller.updateStatus)
			idRouter.Put("reschedule", controller.reschedule)
			idRouter.Get("reschedule/history", controller.rescheduleHistory)
			idRouter.Put("cancel", controller.cancel)
			idRouter.Post("participants", controller.addParticipant)
			idRouter.Delete("participants/:participantId", controller.removeParticipant)
			idRouter.Put("participants/:participantId/attended", controller.setAttended)
			idRouter.Post("participants/:participantId/feedback", controller.submitFeedback)
			idRouter.Get("feedback_summary", controller.feedbackSummary)
		})
	})
}

// @Summary Interview list
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	interviewapimodels.InterviewFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/interview/list [post]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	filter := interviewapimodels.InterviewFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := interviewhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Schedule interview
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	interviewapimodels.InterviewData	true	"interview data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	data := interviewapimodels.InterviewData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := interviewhandler.Instance.Create(data, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Interview details
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update interview
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   body	body	interviewapimodels.InterviewData	true	"interview data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/{id} [put]
func (c *interviewApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := interviewapimodels.InterviewData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := interviewhandler.Instance.Update(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete interview
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change interview status
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   body	body	interviewapimodels.StatusUpdateRequest	true	"new status"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/{id}/update_status [put]
func (c *interviewApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := interviewapimodels.StatusUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := interviewhandler.Instance.ChangeStatus(id, req); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reschedule interview
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   body	body	interviewapimodels.RescheduleRequest	true	"new date and reason"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/{id}/reschedule [put]
func (c *interviewApiController) reschedule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := interviewapimodels.RescheduleRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := interviewhandler.Instance.Reschedule(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Interview reschedule history
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.RescheduleView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id}/reschedule/history [get]
func (c *interviewApiController) rescheduleHistory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewhandler.Instance.ListReschedules(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Cancel interview
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   body	body	interviewapimodels.CancelRequest	true	"cancellation reason"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/{id}/cancel [put]
func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := interviewapimodels.CancelRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.Cancel(id, req); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add interview participant
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   body	body	interviewapimodels.ParticipantData	true	"participant data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/{id}/participants [post]
func (c *interviewApiController) addParticipant(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := interviewapimodels.ParticipantData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	participantID, err := interviewhandler.Instance.AddParticipant(id, data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(participantID))
}

// @Summary Remove interview participant
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   participantId	path	string	true	"participant id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id}/participants/{participantId} [delete]
func (c *interviewApiController) removeParticipant(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	participantID, err := c.GetParamID(ctx, "participantId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.RemoveParticipant(id, participantID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark participant attendance
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   participantId	path	string	true	"participant id"
// @Param   body	body	interviewapimodels.AttendedRequest	true	"attendance data"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id}/participants/{participantId}/attended [put]
func (c *interviewApiController) setAttended(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	participantID, err := c.GetParamID(ctx, "participantId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := interviewapimodels.AttendedRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := interviewhandler.Instance.SetAttended(id, participantID, req); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Submit participant feedback
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Param   participantId	path	string	true	"participant id"
// @Param   body	body	interviewapimodels.FeedbackRequest	true	"feedback with criteria scores"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id}/participants/{participantId}/feedback [post]
func (c *interviewApiController) submitFeedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	participantID, err := c.GetParamID(ctx, "participantId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := interviewapimodels.FeedbackRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := interviewhandler.Instance.SubmitFeedback(id, participantID, req); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Consolidated feedback summary
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"interview id"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.FeedbackSummary}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/interview/{id}/feedback_summary [get]
func (c *interviewApiController) feedbackSummary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := interviewhandler.Instance.GetFeedbackSummary(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Interview round list
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   active_only	query	bool	false	"only active rounds"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.RoundView}
// @router /api/v1/interview/round/list [get]
func (c *interviewApiController) listRounds(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListRounds(ctx.QueryBool("active_only"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create interview round
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	interviewapimodels.RoundData	true	"round data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/round [post]
func (c *interviewApiController) createRound(ctx *fiber.Ctx) error {
	data := interviewapimodels.RoundData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := interviewhandler.Instance.CreateRound(data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update interview round
// @Tags Interview
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"round id"
// @Param   body	body	interviewapimodels.RoundData	true	"round data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/interview/round/{id} [put]
func (c *interviewApiController) updateRound(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := interviewapimodels.RoundData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := interviewhandler.Instance.UpdateRound(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
