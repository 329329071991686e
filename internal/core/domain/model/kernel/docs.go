// Package kernel holds the primitives shared by the user and order models:
// the UUID identifier value object and the storage-precision clock.
package kernel
