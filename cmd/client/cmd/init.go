// cmd/client/cmd/init.go
package cmd

import (
	"dayadmin/cmd/client/cmd/auth"
	"dayadmin/cmd/client/cmd/event"
	"dayadmin/cmd/client/cmd/form"
	"dayadmin/cmd/client/cmd/slide"
	"dayadmin/cmd/client/cmd/template"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	rootCmd.AddCommand(template.TemplateCmd)
	template.TemplateCmd.AddCommand(template.ListCmd)
	template.TemplateCmd.AddCommand(template.CreateCmd)

	rootCmd.AddCommand(form.FormCmd)
	form.FormCmd.AddCommand(form.PullCmd)
	form.FormCmd.AddCommand(form.ShowCmd)
	form.FormCmd.AddCommand(form.SetCmd)
	form.FormCmd.AddCommand(form.ToggleCmd)
	form.FormCmd.AddCommand(form.AddFieldCmd)
	form.FormCmd.AddCommand(form.SelectCmd)
	form.FormCmd.AddCommand(form.PushCmd)

	rootCmd.AddCommand(slide.SlideCmd)
	slide.SlideCmd.AddCommand(slide.PullCmd)
	slide.SlideCmd.AddCommand(slide.ListCmd)
	slide.SlideCmd.AddCommand(slide.AddCmd)
	slide.SlideCmd.AddCommand(slide.SetCmd)
	slide.SlideCmd.AddCommand(slide.ImageCmd)
	slide.SlideCmd.AddCommand(slide.RemoveCmd)
	slide.SlideCmd.AddCommand(slide.PushCmd)

	rootCmd.AddCommand(event.EventCmd)
	event.EventCmd.AddCommand(event.PullCmd)
	event.EventCmd.AddCommand(event.ListCmd)
	event.EventCmd.AddCommand(event.AddCmd)
	event.EventCmd.AddCommand(event.SetCmd)
	event.EventCmd.AddCommand(event.ImageCmd)
	event.EventCmd.AddCommand(event.DeleteCmd)
	event.EventCmd.AddCommand(event.PushCmd)
}
