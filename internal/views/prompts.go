package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// choiceForm builds the radio group behind a choice prompt
func choiceForm(options []string, selected string) *widget.RadioGroup {
	radio := widget.NewRadioGroup(options, nil)
	radio.Required = true
	radio.SetSelected(selected)
	return radio
}

func showChoice(title string, options []string, selected string, onChoose func(string), parent fyne.Window) dialog.Dialog {
	radio := choiceForm(options, selected)

	d := dialog.NewCustomConfirm(title, "OK", "Cancel", radio, func(confirmed bool) {
		if confirmed && radio.Selected != "" {
			onChoose(radio.Selected)
		}
	}, parent)
	d.Show()
	return d
}

// speedEntry has no validator; the controller reports bad input
func speedEntry(current string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("milliseconds, minimum 50")
	entry.SetText(current)
	return entry
}

func showSpeedPrompt(current string, onSubmit func(string), parent fyne.Window) dialog.Dialog {
	entry := speedEntry(current)

	d := dialog.NewForm("Speed", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Interval (ms)", entry)},
		func(confirmed bool) {
			if confirmed {
				onSubmit(entry.Text)
			}
		}, parent)
	d.Resize(fyne.NewSize(320, 160))
	d.Show()
	return d
}
