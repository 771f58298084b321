// Package client is the domain model over the api package: devices,
// users, groups, locations, apps and profiles as objects.
//
// Every object is created by a Factory from a raw record and keeps that
// record as an immutable snapshot. Setters write to the service and leave
// the snapshot alone; call Update to re-fetch and swap in a fresh record.
// A setter whose value already equals the snapshot makes no call.
//
// Traversals such as Device.GetOwner or Location.GetDevices are
// best-effort: remote failures (auth, permission, non-2xx, network) give
// an empty result, while validation and schema errors are returned.
//
//	c, err := client.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	device, err := c.GetDeviceBySerial(ctx, "DMPXK1ABCD12")
//	if err != nil {
//		return err
//	}
//	if err := device.SetNotes(ctx, "screen replaced"); err != nil {
//		return err
//	}
//	err = device.Update(ctx)
package client
