package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	mprhandler "recruitment-backend/lib/mpr"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	mprapimodels "recruitment-backend/models/api/mpr"
)

type mprApiController struct {
	controllers.BaseAPIController
}

func InitMPRApiRouters(app *fiber.App) {
	controller := mprApiController{}
	app.Route("mpr", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get("dashboard", controller.dashboard)
		router.Post("export/xls", controller.exportXls)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
			idRouter.Put("submit_for_approval", controller.submit)
			idRouter.Put("approve", controller.approve)
			idRouter.Put("reject", controller.reject)
			idRouter.Put("hold", controller.hold)
			idRouter.Put("close", controller.close)
			idRouter.Post("comments", controller.addComment)
			idRouter.Get("comments", controller.listComments)
			idRouter.Get("status_history", controller.statusHistory)
			idRouter.Post("generate_description", controller.generateDescription)
		})
	})
}

// @Summary Manpower requisition list
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	mprapimodels.MPRFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]mprapimodels.MPRView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/mpr/list [post]
func (c *mprApiController) list(ctx *fiber.Ctx) error {
	filter := mprapimodels.MPRFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := mprhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create manpower requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	mprapimodels.MPRData	true	"requisition data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/mpr [post]
func (c *mprApiController) create(ctx *fiber.Ctx) error {
	data := mprapimodels.MPRData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := mprhandler.Instance.Create(data, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Requisition details
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Success 200 {object} apimodels.Response{data=mprapimodels.MPRView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/mpr/{id} [get]
func (c *mprApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := mprhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.MPRData	true	"requisition data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id} [put]
func (c *mprApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := mprapimodels.MPRData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := mprhandler.Instance.Update(id, data, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id} [delete]
func (c *mprApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := mprhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Submit requisition for approval
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id}/submit_for_approval [put]
func (c *mprApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := mprhandler.Instance.Submit(id, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Approve requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.DecisionRequest	true	"decision comment"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id}/approve [put]
func (c *mprApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := mprapimodels.DecisionRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := mprhandler.Instance.Approve(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.RejectRequest	true	"rejection reason"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id}/reject [put]
func (c *mprApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := mprapimodels.RejectRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := mprhandler.Instance.Reject(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Put requisition on hold
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.DecisionRequest	true	"hold reason"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id}/hold [put]
func (c *mprApiController) hold(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := mprapimodels.DecisionRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := mprhandler.Instance.Hold(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Close requisition
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.DecisionRequest	true	"close reason"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/mpr/{id}/close [put]
func (c *mprApiController) close(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := mprapimodels.DecisionRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := mprhandler.Instance.Close(id, req, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add requisition comment
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   body	body	mprapimodels.CommentData	true	"comment"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/mpr/{id}/comments [post]
func (c *mprApiController) addComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := mprapimodels.CommentData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	commentID, err := mprhandler.Instance.AddComment(id, data, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(commentID))
}

// @Summary Requisition comment list
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Param   include_internal	query	bool	false	"include internal comments"
// @Success 200 {object} apimodels.Response{data=[]mprapimodels.CommentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/mpr/{id}/comments [get]
func (c *mprApiController) listComments(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := mprhandler.Instance.ListComments(id, ctx.QueryBool("include_internal"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Requisition status history
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Success 200 {object} apimodels.Response{data=[]mprapimodels.StatusHistoryView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/mpr/{id}/status_history [get]
func (c *mprApiController) statusHistory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := mprhandler.Instance.ListStatusHistory(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Requisition counts by status
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=mprapimodels.DashboardStats}
// @router /api/v1/mpr/dashboard [get]
func (c *mprApiController) dashboard(ctx *fiber.Ctx) error {
	stats, err := mprhandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Generate job posting text
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"requisition id"
// @Success 200 {object} apimodels.Response{data=gptmodels.GenJobPostingResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response
// @router /api/v1/mpr/{id}/generate_description [post]
func (c *mprApiController) generateDescription(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := mprhandler.Instance.GenerateDescription(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export requisition list to xlsx
// @Tags MPR
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	mprapimodels.MPRFilter	true	"filter"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @router /api/v1/mpr/export/xls [post]
func (c *mprApiController) exportXls(ctx *fiber.Ctx) error {
	filter := mprapimodels.MPRFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	buffer, err := mprhandler.Instance.ExportXls(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requisitions.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buffer.Bytes())
}
