// Package controls provides the concrete elements built on the layout and
// input core: a templated Control base, the Panel and StackPanel containers,
// the single-child Decorator and Border, the TextBlock leaf and Root, the
// layout root that owns a layout Queue and a FocusManager.
//
// A tree is assembled from the top down and laid out through its root:
//
//	root := controls.NewRoot(graphics.Size{Width: 320, Height: 240})
//	stack := controls.NewStackPanel()
//	stack.SetSpacing(4)
//	_ = stack.Controls().Add(controls.NewTextBlock("hello"), controls.NewTextBlock("world"))
//	_ = root.SetChild(stack)
//	if err := root.LayoutPass(); err != nil {
//	    return err
//	}
package controls
