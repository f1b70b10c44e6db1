//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework AppKit
#import <Cocoa/Cocoa.h>
#import <AppKit/AppKit.h>

int appIsActive() {
    return [NSApp isActive] ? 1 : 0;
}

void appActivate() {
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

func isAppActive() bool {
	return C.appIsActive() == 1
}

func activateApp() {
	C.appActivate()
}
