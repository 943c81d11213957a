package ui

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vidscope/vidscope-desktop/internal/lists"
	"github.com/vidscope/vidscope-desktop/internal/model"
)

// ListsView shows the user's video lists and the videos inside the
// selected list
type ListsView struct {
	service      *lists.Service
	window       fyne.Window
	localization *Localization

	collection []*model.List
	selected   *model.List

	listWidget  *widget.List
	itemsWidget *widget.List
	detailTitle *widget.Label
	renameBtn   *widget.Button
	deleteBtn   *widget.Button

	unsubscribeCollection func()
	unsubscribeSelected   func()
}

// NewListsView creates the lists view and subscribes to list changes
func NewListsView(service *lists.Service, window fyne.Window, loc *Localization) *ListsView {
	lv := &ListsView{
		service:      service,
		window:       window,
		localization: loc,
	}

	lv.createWidgets()

	lv.unsubscribeCollection = service.SubscribeCollection(func(collection []*model.List) {
		fyne.Do(func() {
			lv.collection = collection
			lv.reselect()
			lv.listWidget.Refresh()
		})
	})

	return lv
}

// Content returns the view's root canvas object
func (lv *ListsView) Content() fyne.CanvasObject {
	newButton := widget.NewButton(lv.localization.GetText(KeyNewList), lv.showCreateDialog)
	sidebar := container.NewBorder(newButton, nil, nil, nil, lv.listWidget)

	detailHeader := container.NewHBox(lv.detailTitle, lv.renameBtn, lv.deleteBtn)
	detail := container.NewBorder(detailHeader, nil, nil, nil, lv.itemsWidget)

	split := container.NewHSplit(sidebar, detail)
	split.SetOffset(0.3)
	return split
}

// Load fetches the list collection
func (lv *ListsView) Load(ctx context.Context) {
	go func() {
		collection, err := lv.service.GetLists(ctx)
		if err != nil {
			log.Printf("Failed to load lists: %v", err)
			return
		}

		fyne.Do(func() {
			lv.collection = collection
			lv.reselect()
			lv.listWidget.Refresh()
		})
	}()
}

// Teardown releases the view's subscriptions
func (lv *ListsView) Teardown() {
	if lv.unsubscribeCollection != nil {
		lv.unsubscribeCollection()
	}
	if lv.unsubscribeSelected != nil {
		lv.unsubscribeSelected()
	}
}

// createWidgets builds the sidebar and detail widgets
func (lv *ListsView) createWidgets() {
	lv.listWidget = widget.NewList(
		func() int { return len(lv.collection) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i >= len(lv.collection) {
				return
			}
			label := obj.(*widget.Label)
			name := lv.collection[i].Name
			if lv.collection[i].IsDefault {
				name += " ★"
			}
			label.SetText(name)
		},
	)
	lv.listWidget.OnSelected = func(i widget.ListItemID) {
		if i >= len(lv.collection) {
			return
		}
		lv.selectList(lv.collection[i])
	}

	lv.itemsWidget = widget.NewList(
		func() int {
			if lv.selected == nil {
				return 0
			}
			return lv.selected.Len()
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			remove := widget.NewButton(lv.localization.GetText(KeyRemoveFromList), nil)
			return container.NewBorder(nil, nil, nil, remove, title)
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if lv.selected == nil || i >= lv.selected.Len() {
				return
			}
			item := lv.selected.Items[i]

			// Border containers list the side object before the center one
			row := obj.(*fyne.Container)
			remove := row.Objects[0].(*widget.Button)
			title := row.Objects[1].(*widget.Label)

			// Membership entries may arrive as bare ids; hydrate them
			// before anything is shown
			if video, ok := item.Video.Video(); ok {
				title.SetText(video.Title)
			} else {
				title.SetText(lv.localization.GetText(KeyLoading))
				lv.hydrateItem(item.Video.ID())
			}

			videoID := item.Video.ID()
			remove.OnTapped = func() { lv.removeVideo(videoID) }
		},
	)

	lv.detailTitle = widget.NewLabel("")
	lv.detailTitle.TextStyle = fyne.TextStyle{Bold: true}
	lv.renameBtn = widget.NewButton(lv.localization.GetText(KeyRename), lv.showRenameDialog)
	lv.deleteBtn = widget.NewButton(lv.localization.GetText(KeyDelete), lv.confirmDelete)
	lv.renameBtn.Hide()
	lv.deleteBtn.Hide()
}

// hydrateItem resolves an id-only membership entry off the UI thread
// and patches the full video back into the selected list. The service
// memoizes resolutions, so repeated row renders do not refetch.
func (lv *ListsView) hydrateItem(videoID string) {
	if lv.selected == nil {
		return
	}
	listID := lv.selected.ID

	go func() {
		video, err := lv.service.ResolveVideo(context.Background(), videoID)
		if err != nil {
			log.Printf("Failed to resolve video %s: %v", videoID, err)
			return
		}

		fyne.Do(func() {
			if lv.selected == nil || lv.selected.ID != listID {
				return
			}
			for i := range lv.selected.Items {
				if lv.selected.Items[i].Video.ID() == videoID {
					lv.selected.Items[i].Video = model.ResolvedRef(video)
				}
			}
			lv.itemsWidget.Refresh()
		})
	}()
}

// selectList switches the detail pane to the given list
func (lv *ListsView) selectList(list *model.List) {
	if lv.unsubscribeSelected != nil {
		lv.unsubscribeSelected()
		lv.unsubscribeSelected = nil
	}

	lv.selected = list
	lv.unsubscribeSelected = lv.service.Subscribe(list.ID, func(updated *model.List) {
		fyne.Do(func() {
			lv.selected = updated
			lv.refreshDetail()
		})
	})

	lv.refreshDetail()
}

// reselect keeps the detail pane pointed at the same list after the
// collection changed
func (lv *ListsView) reselect() {
	if lv.selected == nil {
		return
	}
	for _, list := range lv.collection {
		if list.ID == lv.selected.ID {
			lv.selected = list
			lv.refreshDetail()
			return
		}
	}

	// The selected list is gone
	lv.selected = nil
	lv.refreshDetail()
}

// refreshDetail updates the detail pane widgets
func (lv *ListsView) refreshDetail() {
	if lv.selected == nil {
		lv.detailTitle.SetText("")
		lv.renameBtn.Hide()
		lv.deleteBtn.Hide()
		lv.itemsWidget.Refresh()
		return
	}

	title := lv.selected.Name
	if lv.selected.IsDefault {
		title += " — " + lv.localization.GetText(KeyDefaultListNote)
	}
	lv.detailTitle.SetText(title)

	// The default list cannot be renamed or deleted
	if lv.selected.CanRename() {
		lv.renameBtn.Show()
	} else {
		lv.renameBtn.Hide()
	}
	if lv.selected.CanDelete() {
		lv.deleteBtn.Show()
	} else {
		lv.deleteBtn.Hide()
	}

	lv.itemsWidget.Refresh()
}

// showCreateDialog prompts for a new list name
func (lv *ListsView) showCreateDialog() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(lv.localization.GetText(KeyListName))

	dialog.NewCustomConfirm(
		lv.localization.GetText(KeyNewList),
		lv.localization.GetText(KeyCreate),
		lv.localization.GetText(KeyCancel),
		entry,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			lv.createList(entry.Text)
		},
		lv.window,
	).Show()
}

// showRenameDialog prompts for a new name for the selected list
func (lv *ListsView) showRenameDialog() {
	if lv.selected == nil {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(lv.selected.Name)

	target := lv.selected
	dialog.NewCustomConfirm(
		lv.localization.GetText(KeyRename),
		lv.localization.GetText(KeySave),
		lv.localization.GetText(KeyCancel),
		entry,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			lv.renameList(target, entry.Text)
		},
		lv.window,
	).Show()
}

// confirmDelete asks before deleting the selected list
func (lv *ListsView) confirmDelete() {
	if lv.selected == nil {
		return
	}

	target := lv.selected
	dialog.ShowConfirm(
		lv.localization.GetText(KeyDelete),
		lv.localization.GetText(KeyDeleteConfirm),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			lv.deleteList(target)
		},
		lv.window,
	)
}

// createList runs the create call off the UI thread
func (lv *ListsView) createList(name string) {
	go func() {
		if _, err := lv.service.CreateList(context.Background(), name); err != nil {
			lv.showError(err)
		}
	}()
}

// renameList runs the rename call off the UI thread
func (lv *ListsView) renameList(list *model.List, name string) {
	go func() {
		if err := lv.service.RenameList(context.Background(), list, name); err != nil {
			lv.showError(err)
		}
	}()
}

// deleteList runs the delete call off the UI thread
func (lv *ListsView) deleteList(list *model.List) {
	go func() {
		if err := lv.service.DeleteList(context.Background(), list); err != nil {
			lv.showError(err)
		}
	}()
}

// removeVideo runs the remove call off the UI thread
func (lv *ListsView) removeVideo(videoID string) {
	if lv.selected == nil {
		return
	}

	listID := lv.selected.ID
	go func() {
		if err := lv.service.RemoveVideo(context.Background(), listID, videoID); err != nil {
			lv.showError(err)
		}
	}()
}

// showError surfaces a service error in a dialog with a friendly
// message for the known validation cases
func (lv *ListsView) showError(err error) {
	message := err.Error()
	if errors.Is(err, lists.ErrEmptyName) {
		message = lv.localization.GetText(KeyNameRequired)
	} else if errors.Is(err, lists.ErrDefaultList) {
		message = lv.localization.GetText(KeyDefaultListNote)
	}

	fyne.Do(func() {
		dialog.ShowInformation(lv.localization.GetText(KeyTabLists), message, lv.window)
	})
}

// ShowAddToListsDialog offers checkboxes for every list the user owns
// and adds the video to all checked lists at once
func (lv *ListsView) ShowAddToListsDialog(video model.Video) {
	go func() {
		collection, err := lv.service.GetLists(context.Background())
		if err != nil {
			lv.showError(err)
			return
		}

		fyne.Do(func() {
			checks := make([]*widget.Check, 0, len(collection))
			box := container.NewVBox()
			for _, list := range collection {
				check := widget.NewCheck(list.Name, nil)
				check.Checked = list.Contains(video.ID)
				checks = append(checks, check)
				box.Add(check)
			}

			dialog.NewCustomConfirm(
				lv.localization.GetText(KeyAddToLists),
				lv.localization.GetText(KeySave),
				lv.localization.GetText(KeyCancel),
				container.NewVScroll(box),
				func(confirmed bool) {
					if !confirmed {
						return
					}

					var targets []string
					for i, check := range checks {
						if check.Checked && !collection[i].Contains(video.ID) {
							targets = append(targets, collection[i].ID)
						}
					}
					lv.addToLists(video.ID, targets)
				},
				lv.window,
			).Show()
		})
	}()
}

// addToLists fans the add out to every target list
func (lv *ListsView) addToLists(videoID string, listIDs []string) {
	if len(listIDs) == 0 {
		return
	}

	go func() {
		if err := lv.service.AddToLists(context.Background(), videoID, listIDs...); err != nil {
			log.Printf("Adding video %s to lists failed: %v", videoID, err)
			fyne.Do(func() {
				dialog.ShowInformation(
					lv.localization.GetText(KeyAddToLists),
					lv.localization.GetText(KeyAddPartialError),
					lv.window,
				)
			})
		}
	}()
}
