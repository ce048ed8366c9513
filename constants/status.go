package constants

// User roles
const (
	RoleGuest        = 0
	RoleSuperAdmin   = 1
	RoleManager      = 2
	RoleReceptionist = 3
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Room status
const (
	RoomStatusUnavailable = 0
	RoomStatusAvailable   = 1
	RoomStatusMaintenance = 2
)

// Hotel status
const (
	HotelStatusInactive = 0
	HotelStatusActive   = 1
)

// Occupancy source types
const (
	OccupancySourceBooking = "booking"
	OccupancySourceBlock   = "block"
)

// PendingHoldMinutes is how long an unpaid PENDING booking keeps its
// interval before the sweep job cancels it.
const PendingHoldMinutes = 30
