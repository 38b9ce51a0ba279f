// Package components provides the interactive terminal widgets used by the
// patchwork CLI: form controls with controlled/uncontrolled state, overlay
// pickers, and transient toasts. Widgets resolve styling through variant and
// size lookup tables against a ui.Theme and never mutate those tables.
package components
