package schema

// Route keys, one per remote operation.
const (
	RouteGetUser         = "GET /users/:id"
	RouteGetUsers        = "GET /users"
	RouteUpdateUser      = "PUT /users/:id"
	RouteMoveUser        = "PUT /users/:id/migrate"
	RouteGetUserGroups   = "GET /users/groups"
	RouteGetUserGroup    = "GET /users/groups/:id"
	RouteUpdateUserGroup = "PUT /users/groups/:id"

	RouteGetDevices        = "GET /devices"
	RouteGetDevice         = "GET /devices/:udid"
	RouteGetDeviceWithApps = "GET /devices/:udid?includeApps"
	RouteRestartDevice     = "POST /devices/:udid/restart"
	RouteWipeDevice        = "POST /devices/:udid/wipe"
	RouteSetDeviceOwner    = "PUT /devices/:udid/owner"
	RouteMoveDevice        = "PUT /devices/:udid/migrate"
	RouteMoveDevices       = "PUT /devices/migrate"
	RouteSetDeviceDetails  = "POST /devices/:udid/details"

	RouteGetDeviceGroups   = "GET /devices/groups"
	RouteGetDeviceGroup    = "GET /devices/groups/:id"
	RouteUpdateDeviceGroup = "PUT /devices/groups/:id"

	RouteGetApps      = "GET /apps"
	RouteGetApp       = "GET /apps/:id"
	RouteGetLocations = "GET /locations"
	RouteGetLocation  = "GET /locations/:id"
	RouteGetProfiles  = "GET /profiles"
	RouteGetProfile   = "GET /profiles/:id"
)

// EnrollTypes are the accepted values of a device's enrollType.
var EnrollTypes = []string{"manual", "ac2", "ac2Pending", "dep", "depPending"}

// ACLValues are the accepted values of a user group's ACL entries.
var ACLValues = []string{"allow", "deny", "inherit"}

var (
	modelSchema = Object(
		Required("name", String()),
		Required("identifier", String()),
		Required("type", String()),
	)

	osSchema = Object(
		Required("prefix", String()),
		Required("version", String()),
	)

	ownerSchema = Object(
		Required("id", Integer()),
		Optional("locationId", Integer()),
		Optional("inTrash", Boolean()),
		Optional("name", String()),
		Optional("username", String().Nullable()),
		Optional("email", String().Nullable()),
		Optional("firstName", String().Nullable()),
		Optional("lastName", String().Nullable()),
	)

	regionSchema = Object(
		Required("string", String()),
		Required("coordinates", String()),
	)

	deviceAppSchema = Object(
		Required("name", String()),
		Required("identifier", String()),
		Required("version", String()),
		Optional("vendor", String().Nullable()),
		Optional("icon", String().Nullable()),
	)

	deviceSchema = Object(
		Required("UDID", String()),
		Required("locationId", Integer()),
		Required("serialNumber", String()),
		Required("name", String()),
		Required("class", String()),
		Required("model", modelSchema),
		Required("os", osSchema),
		Required("owner", ownerSchema),
		Required("isManaged", Boolean()),
		Required("isSupervised", Boolean()),
		Required("batteryLevel", Number()),
		Required("totalCapacity", Number()),
		Required("availableCapacity", Number()),
		Required("inTrash", Boolean()),
		Required("enrollType", Enum(EnrollTypes...)),
		Required("groups", ArrayOf(String())),
		Optional("assetTag", String().Nullable()),
		Optional("notes", String().Nullable()),
		Optional("lastCheckin", String().Nullable()),
		Optional("modified", String().Nullable()),
		Optional("region", regionSchema),
		Optional("apps", ArrayOf(deviceAppSchema)),
	)

	userSchema = Object(
		Required("id", Integer()),
		Required("locationId", Integer()),
		Required("username", String()),
		Required("email", String()),
		Required("firstName", String()),
		Required("lastName", String()),
		Required("name", String()),
		Required("exclude", Boolean()),
		Required("trashed", Boolean()),
		Required("groupIds", ArrayOf(Integer())),
		Required("groups", ArrayOf(String())),
		Required("deviceCount", Integer()),
		Optional("domain", String().Nullable()),
		Optional("notes", String().Nullable()),
		Optional("teacherGroups", ArrayOf(Integer())),
		Optional("children", ArrayOf(Integer())),
		Optional("modified", String().Nullable()),
	)

	userGroupSchema = Object(
		Required("id", Integer()),
		Required("locationId", Integer()),
		Required("name", String()),
		Required("userCount", Integer()),
		Optional("description", String().Nullable()),
		Optional("acl", Object(
			Required("teacher", Enum(ACLValues...)),
			Required("parent", Enum(ACLValues...)),
		)),
	)

	deviceGroupSchema = Object(
		Required("id", Integer()),
		Required("locationId", Integer()),
		Required("name", String()),
		Required("isSmartGroup", Boolean()),
		Required("isShared", Boolean()),
		Required("members", Integer()),
		Optional("description", String().Nullable()),
		Optional("type", String()),
		Optional("imageUrl", String().Nullable()),
	)

	locationSchema = Object(
		Required("id", Integer()),
		Required("name", String()),
		Required("isDistrict", Boolean()),
		Optional("street", String().Nullable()),
		Optional("streetNumber", String().Nullable()),
		Optional("postalCode", String().Nullable()),
		Optional("city", String().Nullable()),
		Optional("source", String().Nullable()),
		Optional("asmIdentifier", String().Nullable()),
		Optional("schoolNumber", String().Nullable()),
	)

	appSchema = Object(
		Required("id", Integer()),
		Required("locationId", Integer()),
		Required("name", String()),
		Required("bundleId", String()),
		Required("isBook", Boolean()),
		Optional("adamId", Integer().Nullable()),
		Optional("vendor", String().Nullable()),
		Optional("version", String().Nullable()),
		Optional("shortVersion", String().Nullable()),
		Optional("platform", String().Nullable()),
		Optional("icon", String().Nullable()),
		Optional("description", String().Nullable()),
	)

	profileSchema = Object(
		Required("id", Integer()),
		Required("locationId", Integer()),
		Required("name", String()),
		Required("identifier", String()),
		Required("platform", String()),
		Required("type", String()),
		Optional("description", String().Nullable()),
		Optional("isTemplate", Boolean()),
		Optional("daysOfTheWeek", ArrayOf(String()).Nullable()),
		Optional("startTime", String().Nullable()),
		Optional("endTime", String().Nullable()),
		Optional("useHolidays", Boolean()),
	)

	// writeSchema is the acknowledgement every mutating route answers with.
	writeSchema = Object(
		Required("code", Integer()),
		Required("message", String()),
	)
)

func single(name string, entity *Schema) *Schema {
	return Object(Required("code", Integer()), Required(name, entity))
}

func list(name string, entity *Schema) *Schema {
	return Object(
		Required("code", Integer()),
		Optional("count", Integer()),
		Required(name, ArrayOf(entity)),
	)
}

// RouteSchemas returns the response schema of every route.
func RouteSchemas() map[string]*Schema {
	return map[string]*Schema{
		RouteGetUser:         single("user", userSchema),
		RouteGetUsers:        list("users", userSchema),
		RouteUpdateUser:      writeSchema,
		RouteMoveUser:        writeSchema,
		RouteGetUserGroups:   list("groups", userGroupSchema),
		RouteGetUserGroup:    single("group", userGroupSchema),
		RouteUpdateUserGroup: writeSchema,

		RouteGetDevices:        list("devices", deviceSchema),
		RouteGetDevice:         single("device", deviceSchema),
		RouteGetDeviceWithApps: single("device", deviceSchema.WithRequired("apps")),
		RouteRestartDevice:     writeSchema,
		RouteWipeDevice:        writeSchema,
		RouteSetDeviceOwner:    writeSchema,
		RouteMoveDevice:        writeSchema,
		RouteMoveDevices:       writeSchema,
		RouteSetDeviceDetails:  writeSchema,

		RouteGetDeviceGroups:   list("deviceGroups", deviceGroupSchema),
		RouteGetDeviceGroup:    single("deviceGroup", deviceGroupSchema),
		RouteUpdateDeviceGroup: writeSchema,

		RouteGetApps:      list("apps", appSchema),
		RouteGetApp:       single("app", appSchema),
		RouteGetLocations: list("locations", locationSchema),
		RouteGetLocation:  single("location", locationSchema),
		RouteGetProfiles:  list("profiles", profileSchema),
		RouteGetProfile:   single("profile", profileSchema),
	}
}
