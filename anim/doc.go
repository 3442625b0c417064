// Package anim schedules timed interpolation of entity properties.
//
// A World keeps every live animation in one dense, capacity-capped array.
// Callers never see array positions: each animation is known by a slot
// that survives the swap-remove compaction of the array, and the
// animations targeting one entity are threaded into a singly linked list
// of slots, ordered by creation.
//
// Update runs three passes over the array. The first resolves delays,
// captures start values and cancels older animations of the same
// property. The second advances cursors and writes values. The third
// fires stop callbacks and removes stopped animations. Callbacks may
// start or cancel animations on the same World while the third pass is
// running.
package anim
