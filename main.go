package main

import "github.com/magpierre/fyne-datagrid/windows"

func main() {
	windows.CreateMainWindow()
}
