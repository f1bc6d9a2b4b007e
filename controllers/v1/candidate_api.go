package apiv1

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"recruitment-backend/controllers"
	candidatehandler "recruitment-backend/lib/candidate"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	candidateapimodels "recruitment-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("export/xls", controller.exportXls)
		router.Put("multi-actions/update_status", controller.bulkUpdateStatus)
		router.Route("attachments/:id", func(fileRouter fiber.Router) {
			fileRouter.Get("", controller.downloadAttachment)
			fileRouter.Delete("", controller.deleteAttachment)
		})
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Get("summary", controller.summary)
			idRouter.Get("status_updates", controller.statusUpdates)
			idRouter.Put("update_status", controller.updateStatus)
			idRouter.Put("score", controller.score)
			idRouter.Post("attachments", controller.uploadAttachment)
			idRouter.Get("attachments", controller.listAttachments)
			idRouter.Put("attachments/:attachmentId/set_primary_cv", controller.setPrimaryCV)
			idRouter.Post("applications", controller.createApplication)
			idRouter.Get("applications", controller.listApplications)
			idRouter.Put("applications/:applicationId/change_stage", controller.changeApplicationStage)
			idRouter.Put("applications/:applicationId/set_primary_cv", controller.setApplicationCV)
			idRouter.Put("applications/:applicationId/skill_match", controller.skillMatch)
		})
	})
}

// @Summary Candidate list
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	candidateapimodels.CandidateFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	filter := candidateapimodels.CandidateFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := candidatehandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create candidate
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	candidateapimodels.CandidateData	true	"candidate data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	data := candidateapimodels.CandidateData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := candidatehandler.Instance.Create(data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate details
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update candidate
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   body	body	candidateapimodels.CandidateData	true	"candidate data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := candidateapimodels.CandidateData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := candidatehandler.Instance.Update(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate summary with history, attachments and applications
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateSummary}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/summary [get]
func (c *candidateApiController) summary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidatehandler.Instance.GetSummary(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Candidate status history
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.StatusUpdateView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/status_updates [get]
func (c *candidateApiController) statusUpdates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.ListStatusUpdates(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Change candidate hiring status
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   body	body	candidateapimodels.StatusUpdateRequest	true	"new status"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/update_status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.StatusUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := candidatehandler.Instance.ChangeStatus(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change hiring status for a set of candidates
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	candidateapimodels.BulkStatusUpdateRequest	true	"candidate ids and new status"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/multi-actions/update_status [put]
func (c *candidateApiController) bulkUpdateStatus(ctx *fiber.Ctx) error {
	req := candidateapimodels.BulkStatusUpdateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := candidatehandler.Instance.BulkChangeStatus(req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Set candidate evaluation scores
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   body	body	candidateapimodels.ScoreRequest	true	"scores"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/score [put]
func (c *candidateApiController) score(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.ScoreRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	view, err := candidatehandler.Instance.SetScores(id, req)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upload candidate attachment
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/attachments [post]
func (c *candidateApiController) uploadAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("attachment file open error")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("attachment file read error")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := candidateapimodels.AttachmentUploadData{
		FileType:               models.AttachmentFileType(ctx.FormValue("file_type")),
		Description:            ctx.FormValue("description"),
		IsVisibleToLineManager: ctx.FormValue("is_visible_to_line_manager") == "true",
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	attachmentID, err := candidatehandler.Instance.UploadAttachment(ctx.UserContext(), id,
		file.Filename, file.Header.Get("Content-Type"), fileBody, data, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(attachmentID))
}

// @Summary Candidate attachment list
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.AttachmentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/attachments [get]
func (c *candidateApiController) listAttachments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.ListAttachments(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download attachment
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"attachment id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/attachments/{id} [get]
func (c *candidateApiController) downloadAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := candidatehandler.Instance.GetAttachmentFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, rec.MimeType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, rec.OriginalFileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Delete attachment
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"attachment id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/attachments/{id} [delete]
func (c *candidateApiController) deleteAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.DeleteAttachment(ctx.UserContext(), id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark attachment as the primary CV
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   attachmentId	path	string	true	"attachment id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/candidate/{id}/attachments/{attachmentId}/set_primary_cv [put]
func (c *candidateApiController) setPrimaryCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	attachmentID, err := c.GetParamID(ctx, "attachmentId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.SetPrimaryCV(id, attachmentID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Apply candidate to a requisition
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   body	body	candidateapimodels.ApplicationData	true	"application data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/candidate/{id}/applications [post]
func (c *candidateApiController) createApplication(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := candidateapimodels.ApplicationData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	applicationID, err := candidatehandler.Instance.CreateApplication(id, data, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationID))
}

// @Summary Candidate application list
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/applications [get]
func (c *candidateApiController) listApplications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.ListApplications(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Change application stage
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   applicationId	path	string	true	"application id"
// @Param   body	body	candidateapimodels.ChangeStageRequest	true	"new stage"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/applications/{applicationId}/change_stage [put]
func (c *candidateApiController) changeApplicationStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicationID, err := c.GetParamID(ctx, "applicationId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.ChangeStageRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := candidatehandler.Instance.ChangeApplicationStage(id, applicationID, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Pin a CV to an application
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   applicationId	path	string	true	"application id"
// @Param   body	body	candidateapimodels.SetApplicationCVRequest	true	"attachment reference"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/applications/{applicationId}/set_primary_cv [put]
func (c *candidateApiController) setApplicationCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicationID, err := c.GetParamID(ctx, "applicationId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := candidateapimodels.SetApplicationCVRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.SetApplicationCV(id, applicationID, req.AttachmentID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recompute application skill match
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"candidate id"
// @Param   applicationId	path	string	true	"application id"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ApplicationView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/candidate/{id}/applications/{applicationId}/skill_match [put]
func (c *candidateApiController) skillMatch(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicationID, err := c.GetParamID(ctx, "applicationId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := candidatehandler.Instance.ApplySkillMatch(id, applicationID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Export candidate list to xlsx
// @Tags Candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	candidateapimodels.CandidateFilter	true	"filter"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /api/v1/candidate/export/xls [post]
func (c *candidateApiController) exportXls(ctx *fiber.Ctx) error {
	filter := candidateapimodels.CandidateFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	buffer, err := candidatehandler.Instance.ExportXls(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buffer.Bytes())
}
