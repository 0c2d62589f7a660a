// Package commands defines the shoplist CLI.
//
// Commands
//
//   - list     Show items, with optional search, filter, sort and where expression
//   - add      Add an item
//   - edit     Change the name or quantity of an item
//   - rm       Delete an item
//   - toggle   Flip the purchased flag of an item
//   - stats    Print totals and completion percentage
//   - import   Add items from a markdown checklist file
//   - export   Write the list as a markdown checklist
//
// The root command loads configuration, opens the configured storage backend
// and loads the list before any subcommand runs. Pending changes are saved
// when the command returns, whether or not it failed.
package commands
