package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	emailsynchandler "recruitment-backend/lib/email-sync"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	emailapimodels "recruitment-backend/models/api/email"
)

type emailApiController struct {
	controllers.BaseAPIController
}

func InitEmailApiRouters(app *fiber.App) {
	controller := emailApiController{}
	app.Route("email", func(router fiber.Router) {
		router.Get("account/list", controller.listAccounts)
		router.Post("account", controller.createAccount)
		router.Route("account/:id", func(idRouter fiber.Router) {
			idRouter.Put("", controller.updateAccount)
			idRouter.Delete("", controller.deleteAccount)
			idRouter.Post("sync", controller.syncAccount)
			idRouter.Get("sync_logs", controller.syncLogs)
		})
		router.Post("messages/list", controller.listMessages)
		router.Get("messages/:id", controller.getMessage)
		router.Post("messages/:id/link_candidate", controller.linkCandidate)
	})
}

// @Summary Mailbox account list
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]emailapimodels.AccountView}
// @router /api/v1/email/account/list [get]
func (c *emailApiController) listAccounts(ctx *fiber.Ctx) error {
	list, err := emailsynchandler.Instance.ListAccounts()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Register mailbox account
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	emailapimodels.AccountData	true	"account data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/email/account [post]
func (c *emailApiController) createAccount(ctx *fiber.Ctx) error {
	data := emailapimodels.AccountData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := emailsynchandler.Instance.CreateAccount(data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update mailbox account
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"account id"
// @Param   body	body	emailapimodels.AccountData	true	"account data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/email/account/{id} [put]
func (c *emailApiController) updateAccount(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := emailapimodels.AccountData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := emailsynchandler.Instance.UpdateAccount(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete mailbox account
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"account id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/email/account/{id} [delete]
func (c *emailApiController) deleteAccount(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := emailsynchandler.Instance.DeleteAccount(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Run mailbox sync now
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"account id"
// @Success 200 {object} apimodels.Response{data=emailapimodels.SyncLogView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/email/account/{id}/sync [post]
func (c *emailApiController) syncAccount(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := emailsynchandler.Instance.SyncAccount(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Account sync history
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"account id"
// @Success 200 {object} apimodels.Response{data=[]emailapimodels.SyncLogView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/email/account/{id}/sync_logs [get]
func (c *emailApiController) syncLogs(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := emailsynchandler.Instance.ListSyncLogs(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Synced message list
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	emailapimodels.MessageFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]emailapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/email/messages/list [post]
func (c *emailApiController) listMessages(ctx *fiber.Ctx) error {
	filter := emailapimodels.MessageFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := emailsynchandler.Instance.ListMessages(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Message details with attachments
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"message id"
// @Success 200 {object} apimodels.Response{data=emailapimodels.MessageView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/email/messages/{id} [get]
func (c *emailApiController) getMessage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := emailsynchandler.Instance.GetMessageByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Link message to a candidate
// @Tags Email
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"message id"
// @Param   body	body	emailapimodels.LinkCandidateRequest	true	"candidate reference"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/email/messages/{id}/link_candidate [post]
func (c *emailApiController) linkCandidate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := emailapimodels.LinkCandidateRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	linkID, err := emailsynchandler.Instance.LinkCandidate(id, req, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(linkID))
}
