package handlers

import (
	userRepoPkg "parkwise/database/repository/user"
	adminSvc "parkwise/services/admin"
	bookingSvc "parkwise/services/booking"
	notificationSvc "parkwise/services/notification"
	ownerSvc "parkwise/services/owner"
	slotSvc "parkwise/services/slot"
	userSvc "parkwise/services/user"
)

// HandlerBundle groups the endpoint handlers and the services they dispatch
// to. Routes receive one bundle instead of a bag of globals.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users         userSvc.UserService
	Owners        ownerSvc.OwnerService
	Slots         slotSvc.SlotService
	Bookings      bookingSvc.BookingService
	Notifications notificationSvc.NotificationService
	Admin         adminSvc.AdminService
	Hub           *notificationSvc.Hub
}
