// A build-and-install pipeline for the VPN Monitor system tray application on
// Linux systems.
//
// One invocation prepares the workspace, resolves an isolated Python runtime
// environment, renders the application icon, freezes the application into a
// single executable with PyInstaller, and installs the executable along with
// desktop launcher entries into the standard per-user directories.
//
// See the README.md for usage info and customization instructions.
package vpnmon_builder
