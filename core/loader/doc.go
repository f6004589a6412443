// Package loader mounts the panel's features onto the Fiber router.
//
// Each feature implements Feature and is registered with a Manager, which
// loads the enabled ones in registration order. The panel registers auth,
// servers and admins.
package loader
