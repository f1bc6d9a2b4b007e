package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruitment-backend/controllers"
	orghandler "recruitment-backend/lib/org"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	orgapimodels "recruitment-backend/models/api/org"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("org", func(router fiber.Router) {
		router.Post("unit/list", controller.listUnits)
		router.Post("unit", controller.createUnit)
		router.Route("unit/:id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.getUnit)
			idRouter.Put("", controller.updateUnit)
			idRouter.Delete("", controller.deleteUnit)
			idRouter.Get("headcount", controller.headcount)
			idRouter.Get("roles", controller.listRoles)
			idRouter.Post("assign_role", controller.assignRole)
			idRouter.Delete("roles/:roleType/:assignmentId", controller.removeRole)
			idRouter.Put("roles/:roleType/:assignmentId/set_primary", controller.setPrimary)
		})
		router.Post("employee/list", controller.listEmployees)
		router.Post("employee", controller.createEmployee)
		router.Put("employee/:id", controller.updateEmployee)
		router.Delete("employee/:id", controller.deleteEmployee)
	})
}

// @Summary Organizational unit list
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	orgapimodels.UnitFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]orgapimodels.UnitView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/org/unit/list [post]
func (c *orgApiController) listUnits(ctx *fiber.Ctx) error {
	filter := orgapimodels.UnitFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := orghandler.Instance.ListUnits(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create organizational unit
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	orgapimodels.UnitData	true	"unit data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/unit [post]
func (c *orgApiController) createUnit(ctx *fiber.Ctx) error {
	data := orgapimodels.UnitData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := orghandler.Instance.CreateUnit(data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Organizational unit details
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Success 200 {object} apimodels.Response{data=orgapimodels.UnitView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/unit/{id} [get]
func (c *orgApiController) getUnit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := orghandler.Instance.GetUnitByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update organizational unit
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Param   body	body	orgapimodels.UnitData	true	"unit data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/unit/{id} [put]
func (c *orgApiController) updateUnit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := orgapimodels.UnitData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := orghandler.Instance.UpdateUnit(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete organizational unit
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/unit/{id} [delete]
func (c *orgApiController) deleteUnit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := orghandler.Instance.DeleteUnit(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Unit headcount against budget
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Success 200 {object} apimodels.Response{data=orgapimodels.HeadcountView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/unit/{id}/headcount [get]
func (c *orgApiController) headcount(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := orghandler.Instance.GetHeadcount(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Employee list
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   filter	body	orgapimodels.EmployeeFilter	true	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]orgapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/org/employee/list [post]
func (c *orgApiController) listEmployees(ctx *fiber.Ctx) error {
	filter := orgapimodels.EmployeeFilter{}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := orghandler.Instance.ListEmployees(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create employee
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   body	body	orgapimodels.EmployeeData	true	"employee data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/employee [post]
func (c *orgApiController) createEmployee(ctx *fiber.Ctx) error {
	data := orgapimodels.EmployeeData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := orghandler.Instance.CreateEmployee(data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update employee
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"employee id"
// @Param   body	body	orgapimodels.EmployeeData	true	"employee data"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/employee/{id} [put]
func (c *orgApiController) updateEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data := orgapimodels.EmployeeData{}
	if err := c.BodyParser(ctx, &data); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := data.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err := orghandler.Instance.UpdateEmployee(id, data); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete employee
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"employee id"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/employee/{id} [delete]
func (c *orgApiController) deleteEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := orghandler.Instance.DeleteEmployee(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign role holder to a unit
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Param   body	body	orgapimodels.AssignRoleRequest	true	"role assignment"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/unit/{id}/assign_role [post]
func (c *orgApiController) assignRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	req := orgapimodels.AssignRoleRequest{}
	if err := c.BodyParser(ctx, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := req.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	assignmentID, err := orghandler.Instance.AssignRole(id, req, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assignmentID))
}

// @Summary Remove role assignment
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Param   roleType	path	string	true	"role type"
// @Param   assignmentId	path	string	true	"assignment id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/unit/{id}/roles/{roleType}/{assignmentId} [delete]
func (c *orgApiController) removeRole(ctx *fiber.Ctx) error {
	id, roleType, assignmentID, err := c.roleParams(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	if err := orghandler.Instance.RemoveRole(id, roleType, assignmentID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark assignment as the primary holder
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Param   roleType	path	string	true	"role type"
// @Param   assignmentId	path	string	true	"assignment id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/org/unit/{id}/roles/{roleType}/{assignmentId}/set_primary [put]
func (c *orgApiController) setPrimary(ctx *fiber.Ctx) error {
	id, roleType, assignmentID, err := c.roleParams(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	if err := orghandler.Instance.SetPrimary(id, roleType, assignmentID); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Unit role assignments grouped by type
// @Tags Org
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"unit id"
// @Success 200 {object} apimodels.Response{data=orgapimodels.UnitRoles}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/org/unit/{id}/roles [get]
func (c *orgApiController) listRoles(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	roles, err := orghandler.Instance.ListRoles(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(roles))
}

func (c *orgApiController) roleParams(ctx *fiber.Ctx) (unitID string, roleType models.RoleType, assignmentID string, err error) {
	unitID, err = c.GetID(ctx)
	if err != nil {
		return
	}
	roleType = models.RoleType(ctx.Params("roleType"))
	if !roleType.IsValid() {
		err = models.NewValidationErrorf("role_type", "unknown role type (%v)", roleType)
		return
	}
	assignmentID, err = c.GetParamID(ctx, "assignmentId")
	return
}
